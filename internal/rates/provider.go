// Package rates defines the boundary between the conversion core and
// external currency-rate services. The core depends only on the
// Provider interface; the HTTP implementation lives in
// internal/platform/exchangerate.
package rates

import "context"

// Provider looks up the exchange rate from one currency to another.
// Implementations perform the remote call (or serve a cached rate) and
// map failures onto the sentinel errors in this package.
type Provider interface {
	// Rate returns how many units of the to-currency one unit of the
	// from-currency buys. Codes are 3-letter ISO-style strings; case
	// is normalized by the implementation.
	Rate(ctx context.Context, from, to string) (float64, error)
}
