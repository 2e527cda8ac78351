package convert

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usama6513/convert-api/internal/domain"
	"github.com/usama6513/convert-api/internal/rates"
)

// stubProvider returns a fixed rate table or a fixed error.
type stubProvider struct {
	rates map[string]float64
	err   error
}

func (s *stubProvider) Rate(_ context.Context, from, to string) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	rate, ok := s.rates[from+"/"+to]
	if !ok {
		return 0, rates.ErrUnknownCurrency
	}
	return rate, nil
}

func newTestEngine(provider rates.Provider) *Engine {
	if provider == nil {
		provider = &stubProvider{err: rates.ErrMissingCredential}
	}
	return NewEngine(provider, slog.Default())
}

func mustCategory(t *testing.T, name string) domain.Category {
	t.Helper()
	c, ok := domain.NewVocabulary().Category(name)
	require.True(t, ok, "category %q not registered", name)
	return c
}

func TestConvertLinear(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	ctx := context.Background()

	testCases := []struct {
		name     string
		category string
		value    float64
		fromUnit string
		toUnit   string
		expected float64
	}{
		{name: "meters to feet", category: "Length", value: 2, fromUnit: "Meters", toUnit: "Feet", expected: 6.56168},
		{name: "kilometers to meters", category: "Length", value: 1, fromUnit: "Kilometers", toUnit: "Meters", expected: 1000},
		{name: "kilograms to pounds", category: "Mass", value: 10, fromUnit: "Kilograms", toUnit: "Pounds", expected: 22.0462},
		{name: "hours to seconds", category: "Time", value: 2, fromUnit: "Hours", toUnit: "Seconds", expected: 7200},
		{name: "bytes to bits", category: "Digital Storage", value: 1, fromUnit: "Bytes", toUnit: "Bits", expected: 8},
		{name: "kilobytes to bytes", category: "Digital Storage", value: 1, fromUnit: "Kilobytes", toUnit: "Bytes", expected: 1024},
		{name: "mbps to bits per second", category: "Data Transfer Rate", value: 1, fromUnit: "Megabits per Second", toUnit: "Bits per Second", expected: 1e6},
		{name: "degrees to radians", category: "Plane Angle", value: 180, fromUnit: "Degrees", toUnit: "Radians", expected: 3.14159265358979},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := engine.Convert(ctx, mustCategory(t, tc.category), tc.value, tc.fromUnit, tc.toUnit)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-6)
		})
	}
}

func TestConvertLinearUnknownUnit(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)

	_, err := engine.Convert(context.Background(), mustCategory(t, "Length"), 1, "Furlongs", "Meters")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)

	_, err = engine.Convert(context.Background(), mustCategory(t, "Length"), 1, "Meters", "Furlongs")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

// Round trip: converting a value to another unit and back must return
// the original within floating point tolerance, for every ordered pair
// in every linear category.
func TestConvertLinearRoundTrip(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	ctx := context.Background()

	for _, category := range domain.NewVocabulary().Categories() {
		if category.Strategy != domain.StrategyLinearFactor {
			continue
		}
		for _, from := range category.Units {
			for _, to := range category.Units {
				forward, err := engine.Convert(ctx, category, 42.5, from.Name, to.Name)
				require.NoError(t, err)
				back, err := engine.Convert(ctx, category, forward, to.Name, from.Name)
				require.NoError(t, err)
				assert.InEpsilonf(t, 42.5, back, 1e-9,
					"%s: %s -> %s -> back", category.Name, from.Name, to.Name)
			}
		}
	}
}

// Identity: converting a value to its own unit returns it exactly, for
// every unit in every fixed category including temperature and fuel
// economy.
func TestConvertIdentityIsExact(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	ctx := context.Background()

	for _, category := range domain.NewVocabulary().Categories() {
		for _, u := range category.Units {
			result, err := engine.Convert(ctx, category, 17.3, u.Name, u.Name)
			require.NoError(t, err)
			assert.Equalf(t, 17.3, result, "%s: %s", category.Name, u.Name)
		}
	}
}

func TestConvertTemperature(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	ctx := context.Background()
	temperature := mustCategory(t, "Temperature")

	testCases := []struct {
		name     string
		value    float64
		fromUnit string
		toUnit   string
		expected float64
	}{
		{name: "freezing point C to F", value: 0, fromUnit: "Celsius", toUnit: "Fahrenheit", expected: 32},
		{name: "boiling point C to F", value: 100, fromUnit: "Celsius", toUnit: "Fahrenheit", expected: 212},
		{name: "freezing point C to K", value: 0, fromUnit: "Celsius", toUnit: "Kelvin", expected: 273.15},
		{name: "body temperature F to C", value: 98.6, fromUnit: "Fahrenheit", toUnit: "Celsius", expected: 37},
		{name: "F to K", value: 32, fromUnit: "Fahrenheit", toUnit: "Kelvin", expected: 273.15},
		{name: "absolute zero K to C", value: 0, fromUnit: "Kelvin", toUnit: "Celsius", expected: -273.15},
		{name: "K to F", value: 273.15, fromUnit: "Kelvin", toUnit: "Fahrenheit", expected: 32},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := engine.Convert(ctx, temperature, tc.value, tc.fromUnit, tc.toUnit)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestConvertTemperatureUnknownUnit(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)

	_, err := engine.Convert(context.Background(), mustCategory(t, "Temperature"), 0, "Rankine", "Celsius")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestConvertFuelEconomy(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	ctx := context.Background()
	fuel := mustCategory(t, "Fuel Economy")

	testCases := []struct {
		name     string
		value    float64
		fromUnit string
		toUnit   string
		expected float64
	}{
		{name: "30 mpg US to L/100km", value: 30, fromUnit: "Miles per Gallon (US)", toUnit: "Liters per 100 Kilometers", expected: 7.8405},
		{name: "mpg US to mpg UK", value: 30, fromUnit: "Miles per Gallon (US)", toUnit: "Miles per Gallon (UK)", expected: 36.0285},
		{name: "km/L to L/100km", value: 20, fromUnit: "Kilometers per Liter", toUnit: "Liters per 100 Kilometers", expected: 5},
		{name: "L/100km to km/L", value: 5, fromUnit: "Liters per 100 Kilometers", toUnit: "Kilometers per Liter", expected: 20},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := engine.Convert(ctx, fuel, tc.value, tc.fromUnit, tc.toUnit)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-3)
		})
	}
}

func TestConvertFuelEconomyUnsupportedUnit(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	fuel := mustCategory(t, "Fuel Economy")

	_, err := engine.Convert(context.Background(), fuel, 30, "Furlongs per Firkin", "Kilometers per Liter")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)

	_, err = engine.Convert(context.Background(), fuel, 30, "Kilometers per Liter", "Furlongs per Firkin")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestConvertFuelEconomyNonFiniteResult(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)
	fuel := mustCategory(t, "Fuel Economy")
	ctx := context.Background()

	testCases := []struct {
		name     string
		fromUnit string
		toUnit   string
	}{
		{name: "zero mpg to liters per 100 km", fromUnit: "Miles per Gallon (US)", toUnit: "Liters per 100 Kilometers"},
		{name: "zero km per liter to liters per 100 km", fromUnit: "Kilometers per Liter", toUnit: "Liters per 100 Kilometers"},
		{name: "zero liters per 100 km to mpg", fromUnit: "Liters per 100 Kilometers", toUnit: "Miles per Gallon (US)"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := engine.Convert(ctx, fuel, 0, tc.fromUnit, tc.toUnit)
			assert.ErrorIs(t, err, ErrNonFiniteResult)
		})
	}
}

func TestConvertCurrency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	currency := mustCategory(t, "Currency")

	t.Run("multiplies by rate", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(&stubProvider{rates: map[string]float64{"USD/EUR": 0.92}})
		result, err := engine.Convert(ctx, currency, 100, "USD", "EUR")
		require.NoError(t, err)
		assert.InDelta(t, 92, result, 1e-9)
	})

	t.Run("missing credential", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(&stubProvider{err: rates.ErrMissingCredential})
		_, err := engine.Convert(ctx, currency, 100, "USD", "EUR")
		assert.ErrorIs(t, err, rates.ErrMissingCredential)
	})

	t.Run("service failure", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(&stubProvider{err: rates.ErrRateService})
		_, err := engine.Convert(ctx, currency, 100, "USD", "EUR")
		assert.ErrorIs(t, err, rates.ErrRateService)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(&stubProvider{rates: map[string]float64{}})
		_, err := engine.Convert(ctx, currency, 100, "USD", "XXX")
		assert.ErrorIs(t, err, rates.ErrUnknownCurrency)
	})
}

func TestConvertUnknownStrategy(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(nil)

	bogus := domain.Category{Name: "Bogus", Strategy: domain.Strategy("mystery")}
	_, err := engine.Convert(context.Background(), bogus, 1, "A", "B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCategoryNotFound))
}
