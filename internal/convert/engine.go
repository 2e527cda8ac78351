// Package convert implements the conversion engine: given a category,
// a value, and two unit names, it dispatches on the category's
// strategy tag and returns the numeric result. The engine is stateless;
// the only collaborator is the currency rate provider.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/usama6513/convert-api/internal/domain"
	"github.com/usama6513/convert-api/internal/rates"
)

// Engine performs unit conversions. All strategies except currency are
// pure arithmetic; currency delegates to the rate provider.
type Engine struct {
	rates  rates.Provider
	logger *slog.Logger
}

// NewEngine creates an Engine. The rate provider may be a stub when
// currency conversion is not needed; every other strategy works
// without it.
func NewEngine(provider rates.Provider, logger *slog.Logger) *Engine {
	return &Engine{
		rates:  provider,
		logger: logger,
	}
}

// Convert converts value from fromUnit to toUnit within the given
// category, dispatching on the category's strategy tag. Unit names
// must be canonical (or raw currency codes for currency categories).
// A result that is not a finite number (a zero value into a
// reciprocal fuel economy formula divides by zero) is an error, never
// returned to the caller.
func (e *Engine) Convert(ctx context.Context, category domain.Category, value float64, fromUnit, toUnit string) (float64, error) {
	result, err := e.dispatch(ctx, category, value, fromUnit, toUnit)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: converting %v from %q to %q", ErrNonFiniteResult, value, fromUnit, toUnit)
	}
	return result, nil
}

func (e *Engine) dispatch(ctx context.Context, category domain.Category, value float64, fromUnit, toUnit string) (float64, error) {
	switch category.Strategy {
	case domain.StrategyLinearFactor:
		return e.convertLinear(category, value, fromUnit, toUnit)
	case domain.StrategyTemperature:
		return convertTemperature(value, fromUnit, toUnit)
	case domain.StrategyFuelEconomy:
		return convertFuelEconomy(value, fromUnit, toUnit)
	case domain.StrategyCurrency:
		return e.convertCurrency(ctx, value, fromUnit, toUnit)
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", domain.ErrCategoryNotFound, category.Strategy)
	}
}

// convertLinear applies the factor-table rule: the result is the value
// scaled by the ratio of the target and source factors. The ratio is
// exactly 1 when the units match, so identity holds without a special
// case.
func (e *Engine) convertLinear(category domain.Category, value float64, fromUnit, toUnit string) (float64, error) {
	fromFactor, ok := category.FactorOf(fromUnit)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no factor in %q", ErrUnsupportedUnit, fromUnit, category.Name)
	}
	toFactor, ok := category.FactorOf(toUnit)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no factor in %q", ErrUnsupportedUnit, toUnit, category.Name)
	}
	return value * (toFactor / fromFactor), nil
}

// convertCurrency multiplies the value by the looked-up rate. Codes
// are passed through verbatim; the provider normalizes case.
func (e *Engine) convertCurrency(ctx context.Context, value float64, fromCode, toCode string) (float64, error) {
	rate, err := e.rates.Rate(ctx, fromCode, toCode)
	if err != nil {
		return 0, fmt.Errorf("currency conversion %s to %s: %w", fromCode, toCode, err)
	}
	e.logger.DebugContext(ctx, "currency rate applied",
		"from", fromCode,
		"to", toCode,
		"rate", rate)
	return value * rate, nil
}
