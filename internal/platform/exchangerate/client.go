package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/usama6513/convert-api/internal/config"
	"github.com/usama6513/convert-api/internal/rates"
)

// Client implements the rates.Provider interface using the
// ExchangeRate-API v6 service.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// httpClient carries the bounded request timeout
	httpClient *http.Client

	// baseURL is the service root, e.g. https://v6.exchangerate-api.com/v6
	baseURL string

	// apiKey authenticates requests; may be empty, in which case every
	// lookup fails with rates.ErrMissingCredential
	apiKey string

	// ttl bounds how long a fetched rate table is reused; zero disables
	// caching entirely
	ttl time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry holds one fetched rate table keyed by its base currency.
type cacheEntry struct {
	rates     map[string]float64
	fetchedAt time.Time
}

// rateResponse mirrors the ExchangeRate-API v6 response body. The
// service reports failures in-band via the result field and an
// error-type code.
type rateResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// NewClient creates a new ExchangeRate-API client from the rate-service
// configuration.
//
// An empty API key is not an error here: conversions for every other
// category work without one, so the missing credential is reported per
// lookup instead.
func NewClient(logger *slog.Logger, cfg config.RatesConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("rate service base URL cannot be empty")
	}

	return &Client{
		logger: logger,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		ttl:     time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		cache:   make(map[string]cacheEntry),
	}, nil
}

// Rate returns the exchange rate from one currency code to another.
// Codes are normalized to uppercase before lookup.
func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	if c.apiKey == "" {
		return 0, rates.ErrMissingCredential
	}

	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	table, err := c.ratesFor(ctx, from)
	if err != nil {
		return 0, err
	}

	rate, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", rates.ErrUnknownCurrency, to)
	}

	c.logger.DebugContext(ctx, "Resolved exchange rate",
		"from_currency", from,
		"to_currency", to,
		"rate", rate)

	return rate, nil
}

// ratesFor returns the rate table for a base currency, serving it from
// the cache when a fresh enough entry exists.
func (c *Client) ratesFor(ctx context.Context, base string) (map[string]float64, error) {
	c.mu.Lock()
	entry, ok := c.cache[base]
	c.mu.Unlock()

	if ok && c.ttl > 0 && time.Since(entry.fetchedAt) < c.ttl {
		return entry.rates, nil
	}

	table, err := c.fetch(ctx, base)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.cache[base] = cacheEntry{rates: table, fetchedAt: time.Now()}
		c.mu.Unlock()
	}

	return table, nil
}

// fetch performs the HTTP call for one base currency's rate table.
func (c *Client) fetch(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", rates.ErrRateService, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rates.ErrRateService, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "Failed to close rate service response body",
				"error", closeErr)
		}
	}()

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", rates.ErrRateService, err)
	}

	if resp.StatusCode != http.StatusOK || body.Result != "success" {
		errType := body.ErrorType
		if errType == "" {
			errType = fmt.Sprintf("status %d", resp.StatusCode)
		}
		c.logger.WarnContext(ctx, "Rate service call failed",
			"base_currency", base,
			"status", resp.StatusCode,
			"error_type", errType)
		return nil, fmt.Errorf("%w: %s", rates.ErrRateService, errType)
	}

	if body.ConversionRates == nil {
		return nil, fmt.Errorf("%w: response missing conversion rates", rates.ErrRateService)
	}

	c.logger.DebugContext(ctx, "Fetched rate table",
		"base_currency", base,
		"rate_count", len(body.ConversionRates))

	return body.ConversionRates, nil
}
