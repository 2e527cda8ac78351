// Package exchangerate implements the rates.Provider interface against
// the ExchangeRate-API v6 HTTP service. It fetches the full rate table
// for a base currency in one call and caches it for a configurable TTL,
// so repeated conversions from the same base currency do not hit the
// network.
package exchangerate
