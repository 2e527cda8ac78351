package api

import (
	"errors"
	"net/http"

	"github.com/usama6513/convert-api/internal/convert"
	"github.com/usama6513/convert-api/internal/domain"
	"github.com/usama6513/convert-api/internal/rates"
	"github.com/usama6513/convert-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Extraction could not determine a complete request
	case errors.Is(err, domain.ErrMissingValue),
		errors.Is(err, domain.ErrMissingFromUnit),
		errors.Is(err, domain.ErrMissingToUnit):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.Is(err, domain.ErrUnresolvableCategory),
		errors.Is(err, convert.ErrUnsupportedUnit),
		errors.Is(err, convert.ErrNonFiniteResult),
		errors.Is(err, rates.ErrUnknownCurrency),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrAliasNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Upstream rate service problems
	case errors.Is(err, rates.ErrMissingCredential):
		return http.StatusServiceUnavailable

	case errors.Is(err, rates.ErrRateService):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrMissingValue):
		return "No numeric value found in the input"

	case errors.Is(err, domain.ErrMissingFromUnit):
		return "No source unit found in the input"

	case errors.Is(err, domain.ErrMissingToUnit):
		return "No target unit found in the input"

	case errors.Is(err, domain.ErrUnresolvableCategory):
		return "The two units do not belong to a common category"

	case errors.Is(err, convert.ErrUnsupportedUnit):
		return "Unsupported unit for this category"

	case errors.Is(err, convert.ErrNonFiniteResult):
		return "The conversion does not produce a finite result"

	case errors.Is(err, domain.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, domain.ErrAliasNotFound):
		return "Unit not recognized"

	case errors.Is(err, rates.ErrMissingCredential):
		return "Currency conversion is not configured"

	case errors.Is(err, rates.ErrUnknownCurrency):
		return "Unknown currency code"

	case errors.Is(err, rates.ErrRateService):
		return "Exchange rate service is unavailable"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
