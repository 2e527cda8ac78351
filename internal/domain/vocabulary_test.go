package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlias(t *testing.T) {
	t.Parallel()
	v := NewVocabulary()

	testCases := []struct {
		name     string
		token    string
		expected string
		found    bool
	}{
		{name: "plural word", token: "meters", expected: "Meters", found: true},
		{name: "british spelling", token: "kilometres", expected: "Kilometers", found: true},
		{name: "mixed case word", token: "Miles", expected: "Miles", found: true},
		{name: "uppercase word", token: "KILOGRAMS", expected: "Kilograms", found: true},
		{name: "abbreviation", token: "kg", expected: "Kilograms", found: true},
		{name: "micro symbol", token: "µm", expected: "Micrometers", found: true},
		{name: "degree symbol", token: "°", expected: "Degrees", found: true},
		{name: "multi-word phrase", token: "miles per gallon", expected: "Miles per Gallon (US)", found: true},
		{name: "slash form", token: "l/100km", expected: "Liters per 100 Kilometers", found: true},
		{name: "unknown alias", token: "furlongs", found: false},
		{name: "empty token", token: "", found: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			unit, ok := v.ResolveAlias(tc.token)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, unit)
			}
		})
	}
}

// Symbol case carries meaning for bits vs bytes; word tokens stay
// case-insensitive. This pins the documented exception list.
func TestResolveAliasCaseSensitiveSymbols(t *testing.T) {
	t.Parallel()
	v := NewVocabulary()

	unit, ok := v.ResolveAlias("b")
	require.True(t, ok)
	assert.Equal(t, "Bits", unit)

	unit, ok = v.ResolveAlias("B")
	require.True(t, ok)
	assert.Equal(t, "Bytes", unit)

	unit, ok = v.ResolveAlias("bps")
	require.True(t, ok)
	assert.Equal(t, "Bits per Second", unit)

	unit, ok = v.ResolveAlias("Bps")
	require.True(t, ok)
	assert.Equal(t, "Bytes per Second", unit)

	// Mixed case that is not in the exception list falls back to the
	// case-normalized table.
	unit, ok = v.ResolveAlias("Mb")
	require.True(t, ok)
	assert.Equal(t, "Megabytes", unit)
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()
	v := NewVocabulary()

	c, ok := v.CategoryOf("Kilometers")
	require.True(t, ok)
	assert.Equal(t, "Length", c.Name)
	assert.Equal(t, StrategyLinearFactor, c.Strategy)

	c, ok = v.CategoryOf("Fahrenheit")
	require.True(t, ok)
	assert.Equal(t, "Temperature", c.Name)
	assert.Equal(t, StrategyTemperature, c.Strategy)

	c, ok = v.CategoryOf("Miles per Gallon (UK)")
	require.True(t, ok)
	assert.Equal(t, "Fuel Economy", c.Name)

	_, ok = v.CategoryOf("USD")
	assert.False(t, ok, "currency codes are not registered units")

	_, ok = v.CategoryOf("Furlongs")
	assert.False(t, ok)
}

func TestFactor(t *testing.T) {
	t.Parallel()
	v := NewVocabulary()

	f, ok := v.Factor("Length", "Meters")
	require.True(t, ok)
	assert.Equal(t, 1.0, f, "base unit factor must be exactly 1")

	f, ok = v.Factor("Length", "Feet")
	require.True(t, ok)
	assert.Equal(t, 3.28084, f)

	_, ok = v.Factor("Temperature", "Celsius")
	assert.False(t, ok, "factor is undefined for non-linear categories")

	_, ok = v.Factor("Fuel Economy", "Miles per Gallon (US)")
	assert.False(t, ok)

	_, ok = v.Factor("Length", "Celsius")
	assert.False(t, ok, "unknown pair must be a hard miss, not zero")

	_, ok = v.Factor("Nope", "Meters")
	assert.False(t, ok)
}

// Every unit belongs to exactly one category, every linear factor is
// positive, and every linear category has a unit with factor exactly 1.
func TestRegistryInvariants(t *testing.T) {
	t.Parallel()
	v := NewVocabulary()

	seen := make(map[string]string)
	for _, c := range v.Categories() {
		hasBase := false
		for _, u := range c.Units {
			owner, dup := seen[u.Name]
			require.Falsef(t, dup, "unit %q appears in %q and %q", u.Name, owner, c.Name)
			seen[u.Name] = c.Name

			if c.Strategy == StrategyLinearFactor {
				assert.Greaterf(t, u.Factor, 0.0, "factor for %q must be positive", u.Name)
				if u.Factor == 1 {
					hasBase = true
				}
			}
		}
		if c.Strategy == StrategyLinearFactor {
			assert.Truef(t, hasBase, "category %q has no base unit", c.Name)
		}
	}
}

// Every alias target must be a registered canonical unit name.
func TestAliasesResolveToRegisteredUnits(t *testing.T) {
	t.Parallel()
	v := NewVocabulary()

	for alias, unit := range aliasTable {
		_, ok := v.CategoryOf(unit)
		assert.Truef(t, ok, "alias %q maps to unregistered unit %q", alias, unit)
	}
	for alias, unit := range exactAliasTable {
		_, ok := v.CategoryOf(unit)
		assert.Truef(t, ok, "alias %q maps to unregistered unit %q", alias, unit)
	}
}
