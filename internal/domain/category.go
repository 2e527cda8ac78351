package domain

// Strategy selects which conversion formula family applies to a category.
type Strategy string

const (
	// StrategyLinearFactor converts through a per-unit factor table
	// relative to the category's base unit.
	StrategyLinearFactor Strategy = "linear-factor"

	// StrategyTemperature uses the piecewise Celsius/Fahrenheit/Kelvin
	// formulas instead of a factor table.
	StrategyTemperature Strategy = "temperature"

	// StrategyFuelEconomy converts through an intermediate
	// liters-per-100km base using reciprocal formulas.
	StrategyFuelEconomy Strategy = "fuel-economy"

	// StrategyCurrency requires an external rate lookup; the category
	// has no fixed unit set, only 3-letter currency codes.
	StrategyCurrency Strategy = "currency-dynamic"
)

// Unit is one member of a category, identified by its canonical display
// name. Factor expresses how many of this unit equal one base-unit
// quantity; it is meaningful only for linear-factor categories and is
// exactly 1 for the base unit.
type Unit struct {
	Name   string
	Factor float64
}

// Category is a named group of commensurable units sharing one
// conversion strategy. Every unit belongs to exactly one category.
type Category struct {
	Name     string
	Strategy Strategy
	Units    []Unit
}

// Contains reports whether the category's unit set holds the given
// canonical unit name. Currency categories hold no fixed units.
func (c Category) Contains(unit string) bool {
	for _, u := range c.Units {
		if u.Name == unit {
			return true
		}
	}
	return false
}

// UnitNames returns the canonical names of the category's units in
// declaration order, suitable for populating a selection list.
func (c Category) UnitNames() []string {
	names := make([]string, len(c.Units))
	for i, u := range c.Units {
		names[i] = u.Name
	}
	return names
}

// FactorOf returns the linear conversion factor for a unit, or false
// if the unit is not a member or the category is not linear-factor.
func (c Category) FactorOf(unit string) (float64, bool) {
	if c.Strategy != StrategyLinearFactor {
		return 0, false
	}
	for _, u := range c.Units {
		if u.Name == unit {
			return u.Factor, true
		}
	}
	return 0, false
}
