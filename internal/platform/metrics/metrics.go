// Package metrics provides Prometheus instrumentation for the
// conversion service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the conversion service.
type Metrics struct {
	// Completed conversions by category and entry method
	Conversions *prometheus.CounterVec

	// Failed conversions by error kind
	ConversionErrors *prometheus.CounterVec

	// Exchange-rate lookup latency
	RateLookupLatency prometheus.Histogram

	// Text extraction latency
	ExtractLatency prometheus.Histogram
}

// New creates a new Metrics instance with all conversion metrics registered.
func New() *Metrics {
	return &Metrics{
		Conversions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "convert_conversions_total",
			Help: "Total completed conversions by category and entry method",
		}, []string{"category", "method"}), // method: "direct", "text"

		ConversionErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "convert_conversion_errors_total",
			Help: "Total failed conversions by error kind",
		}, []string{"kind"}),

		RateLookupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "convert_rate_lookup_duration_seconds",
			Help:    "Duration of exchange-rate lookups including cache hits",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		ExtractLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "convert_extract_duration_seconds",
			Help:    "Duration of quantity and unit extraction from raw text",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementConversion records a completed conversion.
func (m *Metrics) IncrementConversion(category, method string) {
	if m != nil {
		m.Conversions.WithLabelValues(category, method).Inc()
	}
}

// IncrementError records a failed conversion.
func (m *Metrics) IncrementError(kind string) {
	if m != nil {
		m.ConversionErrors.WithLabelValues(kind).Inc()
	}
}

// ObserveRateLookupLatency records the duration of one exchange-rate lookup.
func (m *Metrics) ObserveRateLookupLatency(d time.Duration) {
	if m != nil {
		m.RateLookupLatency.Observe(d.Seconds())
	}
}

// ObserveExtractLatency records the duration of one text extraction.
func (m *Metrics) ObserveExtractLatency(d time.Duration) {
	if m != nil {
		m.ExtractLatency.Observe(d.Seconds())
	}
}
