package convert

import "fmt"

// Canonical fuel economy unit names.
const (
	milesPerGallonUS   = "Miles per Gallon (US)"
	milesPerGallonUK   = "Miles per Gallon (UK)"
	kilometersPerLiter = "Kilometers per Liter"
	litersPer100Km     = "Liters per 100 Kilometers"
)

// Liters consumed over 100 km by a vehicle doing 1 MPG, for US and UK
// gallons respectively.
const (
	mpgUSPer100Km = 235.214583
	mpgUKPer100Km = 282.4809363
)

// convertFuelEconomy converts between fuel economy units through the
// liters-per-100-kilometers base. MPG and km/L relate to the base
// reciprocally, so the same constant converts in both directions.
// Identity short-circuits so convert(x, u, u) is exact. An unknown
// unit on either side is a hard error.
func convertFuelEconomy(value float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit {
		return value, nil
	}

	var base float64
	switch fromUnit {
	case milesPerGallonUS:
		base = mpgUSPer100Km / value
	case milesPerGallonUK:
		base = mpgUKPer100Km / value
	case kilometersPerLiter:
		base = 100 / value
	case litersPer100Km:
		base = value
	default:
		return 0, fmt.Errorf("%w: fuel economy input %q", ErrUnsupportedUnit, fromUnit)
	}

	switch toUnit {
	case milesPerGallonUS:
		return mpgUSPer100Km / base, nil
	case milesPerGallonUK:
		return mpgUKPer100Km / base, nil
	case kilometersPerLiter:
		return 100 / base, nil
	case litersPer100Km:
		return base, nil
	default:
		return 0, fmt.Errorf("%w: fuel economy output %q", ErrUnsupportedUnit, toUnit)
	}
}
