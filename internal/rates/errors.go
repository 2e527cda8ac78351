package rates

import "errors"

// Common errors returned by rate providers.
var (
	// ErrMissingCredential is returned when no API credential is
	// configured for the rate service.
	ErrMissingCredential = errors.New("rate service credential is missing")

	// ErrRateService is returned when the remote rate service call
	// fails or reports a non-success status.
	ErrRateService = errors.New("rate service request failed")

	// ErrUnknownCurrency is returned when a currency code is absent
	// from the returned rate table.
	ErrUnknownCurrency = errors.New("unknown currency code")
)
