package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ConversionMetrics records convert passes.
type ConversionMetrics struct {
	duration    prometheus.Histogram
	conversions prometheus.Counter
	variants    prometheus.Counter
	failures    prometheus.Counter
}

// NewConversionMetrics registers the conversion metrics on the provided registerer.
func NewConversionMetrics(reg prometheus.Registerer) *ConversionMetrics {
	if reg == nil {
		return &ConversionMetrics{}
	}
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "conversion_duration_seconds",
		Help:      "Duration of convert passes in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
	conversions := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "Finished convert passes.",
	})
	variants := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolved_variants_total",
		Help:      "Variants resolved by convert passes.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "failed_handles_total",
		Help:      "Product handles which couldn't be resolved.",
	})
	reg.MustRegister(duration, conversions, variants, failures)
	return &ConversionMetrics{
		duration:    duration,
		conversions: conversions,
		variants:    variants,
		failures:    failures,
	}
}

// ObserveConversion records a finished convert pass.
func (m *ConversionMetrics) ObserveConversion(variants, failures int, duration time.Duration) {
	if m == nil || m.conversions == nil {
		return
	}
	m.duration.Observe(duration.Seconds())
	m.conversions.Inc()
	m.variants.Add(float64(variants))
	m.failures.Add(float64(failures))
}
