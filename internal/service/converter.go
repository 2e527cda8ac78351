package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/usama6513/convert-api/internal/convert"
	"github.com/usama6513/convert-api/internal/domain"
	"github.com/usama6513/convert-api/internal/nlp"
	"github.com/usama6513/convert-api/internal/platform/metrics"
	"github.com/usama6513/convert-api/internal/rates"
	"github.com/usama6513/convert-api/internal/store"
)

// Entry methods recorded in history and metrics.
const (
	MethodDirect = "direct"
	MethodText   = "text"
)

// Result is the outcome of a completed conversion.
type Result struct {
	Value    float64
	FromUnit string
	ToUnit   string
	Result   float64
	Category string
	Method   string
}

// ConverterService provides conversion operations.
type ConverterService interface {
	// Convert performs a conversion from structured input. Unit names
	// may be canonical names, aliases, or three-letter currency codes.
	Convert(ctx context.Context, value float64, fromUnit, toUnit string) (Result, error)

	// ConvertText extracts a quantity and two units from raw text and
	// performs the conversion.
	ConvertText(ctx context.Context, text string) (Result, error)

	// Categories returns every registered category.
	Categories() []domain.Category

	// Units returns the canonical unit names of one category.
	// Returns domain.ErrCategoryNotFound for an unknown category name.
	Units(category string) ([]string, error)

	// History returns all completed conversions, oldest first.
	History(ctx context.Context) ([]store.HistoryEntry, error)
}

// converterServiceImpl implements the ConverterService interface.
type converterServiceImpl struct {
	vocab     *domain.Vocabulary
	extractor *nlp.Extractor
	engine    *convert.Engine
	history   store.HistoryStore
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewConverterService creates a new ConverterService.
// It returns an error if any of the required dependencies are nil.
func NewConverterService(
	vocab *domain.Vocabulary,
	extractor *nlp.Extractor,
	engine *convert.Engine,
	history store.HistoryStore,
	m *metrics.Metrics,
	logger *slog.Logger,
) (ConverterService, error) {
	if vocab == nil {
		return nil, errors.New("vocabulary cannot be nil")
	}
	if extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}
	if engine == nil {
		return nil, errors.New("engine cannot be nil")
	}
	if history == nil {
		return nil, errors.New("history store cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &converterServiceImpl{
		vocab:     vocab,
		extractor: extractor,
		engine:    engine,
		history:   history,
		metrics:   m,
		logger:    logger.With(slog.String("component", "converter_service")),
	}, nil
}

// Convert implements ConverterService.Convert.
func (s *converterServiceImpl) Convert(ctx context.Context, value float64, fromUnit, toUnit string) (Result, error) {
	return s.convert(ctx, value, fromUnit, toUnit, MethodDirect)
}

// ConvertText implements ConverterService.ConvertText.
func (s *converterServiceImpl) ConvertText(ctx context.Context, text string) (Result, error) {
	start := time.Now()
	extraction := s.extractor.Extract(text)
	s.metrics.ObserveExtractLatency(time.Since(start))

	if extraction.Value == nil {
		s.metrics.IncrementError("missing_value")
		return Result{}, domain.ErrMissingValue
	}
	if extraction.FromUnit == "" {
		s.metrics.IncrementError("missing_from_unit")
		return Result{}, domain.ErrMissingFromUnit
	}
	if extraction.ToUnit == "" {
		s.metrics.IncrementError("missing_to_unit")
		return Result{}, domain.ErrMissingToUnit
	}

	return s.convert(ctx, *extraction.Value, extraction.FromUnit, extraction.ToUnit, MethodText)
}

// convert resolves the category for the two units, runs the engine, and
// records the outcome.
func (s *converterServiceImpl) convert(ctx context.Context, value float64, fromUnit, toUnit, method string) (Result, error) {
	from := s.canonicalize(fromUnit)
	to := s.canonicalize(toUnit)

	category, from, to, err := s.resolveCategory(from, to)
	if err != nil {
		s.metrics.IncrementError(errorKind(err))
		return Result{}, err
	}

	engineStart := time.Now()
	result, err := s.engine.Convert(ctx, category, value, from, to)
	if category.Strategy == domain.StrategyCurrency {
		// The engine's currency path is one rate lookup plus a
		// multiplication; failed lookups count too.
		s.metrics.ObserveRateLookupLatency(time.Since(engineStart))
	}
	if err != nil {
		s.metrics.IncrementError(errorKind(err))
		return Result{}, err
	}

	s.metrics.IncrementConversion(category.Name, method)
	s.logger.InfoContext(ctx, "Conversion completed",
		"category", category.Name,
		"from_unit", from,
		"to_unit", to,
		"method", method)

	if _, histErr := s.history.Append(ctx, store.HistoryEntry{
		Value:    value,
		FromUnit: from,
		ToUnit:   to,
		Result:   result,
		Category: category.Name,
		Method:   method,
	}); histErr != nil {
		// History is best-effort display state; a failed append must
		// not fail the conversion itself.
		s.logger.WarnContext(ctx, "Failed to record conversion history",
			"error", histErr)
	}

	return Result{
		Value:    value,
		FromUnit: from,
		ToUnit:   to,
		Result:   result,
		Category: category.Name,
		Method:   method,
	}, nil
}

// canonicalize maps a caller-supplied unit token to its canonical name
// where possible. Canonical names pass through unchanged; unresolvable
// tokens are returned as-is for the currency fallback to inspect.
func (s *converterServiceImpl) canonicalize(token string) string {
	if _, ok := s.vocab.CategoryOf(token); ok {
		return token
	}
	if canonical, ok := s.vocab.ResolveAlias(token); ok {
		return canonical
	}
	return token
}

// resolveCategory finds the category owning both units. When no
// category owns both and both names are exactly three letters, the
// pair resolves to the Currency category with uppercased codes, even
// if one of the names is a registered unit like "PSI" or "BTU"; the
// rate provider then decides whether the codes exist.
func (s *converterServiceImpl) resolveCategory(from, to string) (domain.Category, string, string, error) {
	fromCat, fromKnown := s.vocab.CategoryOf(from)
	toCat, toKnown := s.vocab.CategoryOf(to)

	if fromKnown && toKnown && fromCat.Name == toCat.Name {
		return fromCat, from, to, nil
	}

	if isCurrencyCode(from) && isCurrencyCode(to) {
		currency, ok := s.vocab.Category("Currency")
		if !ok {
			return domain.Category{}, "", "", fmt.Errorf("%w: Currency", domain.ErrCategoryNotFound)
		}
		return currency, strings.ToUpper(from), strings.ToUpper(to), nil
	}

	return domain.Category{}, "", "", fmt.Errorf("%w: %q and %q", domain.ErrUnresolvableCategory, from, to)
}

// Categories implements ConverterService.Categories.
func (s *converterServiceImpl) Categories() []domain.Category {
	return s.vocab.Categories()
}

// Units implements ConverterService.Units.
func (s *converterServiceImpl) Units(category string) ([]string, error) {
	c, ok := s.vocab.Category(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, category)
	}
	return c.UnitNames(), nil
}

// History implements ConverterService.History.
func (s *converterServiceImpl) History(ctx context.Context) ([]store.HistoryEntry, error) {
	return s.history.List(ctx)
}

// isCurrencyCode reports whether a token is exactly three letters.
func isCurrencyCode(token string) bool {
	runes := []rune(token)
	if len(runes) != 3 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// errorKind maps an error to its metrics label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnresolvableCategory):
		return "unresolvable_category"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return "category_not_found"
	case errors.Is(err, convert.ErrUnsupportedUnit):
		return "unsupported_unit"
	case errors.Is(err, convert.ErrNonFiniteResult):
		return "non_finite_result"
	case errors.Is(err, rates.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, rates.ErrUnknownCurrency):
		return "unknown_currency"
	case errors.Is(err, rates.ErrRateService):
		return "rate_service"
	default:
		return "internal"
	}
}
