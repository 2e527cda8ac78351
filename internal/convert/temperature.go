package convert

import "fmt"

// Canonical temperature unit names.
const (
	celsius    = "Celsius"
	fahrenheit = "Fahrenheit"
	kelvin     = "Kelvin"
)

// convertTemperature applies the piecewise formulas between Celsius,
// Fahrenheit, and Kelvin. Identity short-circuits before any
// arithmetic so convert(x, u, u) is exact.
func convertTemperature(value float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit {
		return value, nil
	}

	switch fromUnit {
	case celsius:
		switch toUnit {
		case fahrenheit:
			return value*9/5 + 32, nil
		case kelvin:
			return value + 273.15, nil
		}
	case fahrenheit:
		switch toUnit {
		case celsius:
			return (value - 32) * 5 / 9, nil
		case kelvin:
			return (value-32)*5/9 + 273.15, nil
		}
	case kelvin:
		switch toUnit {
		case celsius:
			return value - 273.15, nil
		case fahrenheit:
			return (value-273.15)*9/5 + 32, nil
		}
	}
	return 0, fmt.Errorf("%w: temperature %q to %q", ErrUnsupportedUnit, fromUnit, toUnit)
}
