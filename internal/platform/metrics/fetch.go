package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "cartlinker"

	resultSuccess = "success"
	resultFailure = "failure"
)

// FetchMetrics records shop requests.
type FetchMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewFetchMetrics registers the fetch metrics on the provided registerer.
func NewFetchMetrics(reg prometheus.Registerer) *FetchMetrics {
	if reg == nil {
		return &FetchMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fetch_duration_seconds",
		Help:      "Duration of shop requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_requests_total",
		Help:      "Shop requests by document kind and result.",
	}, []string{"kind", "result"})
	reg.MustRegister(duration, requests)
	return &FetchMetrics{
		duration: duration,
		requests: requests,
	}
}

// ObserveFetch records a single shop request.
func (m *FetchMetrics) ObserveFetch(kind string, err error, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
	m.requests.WithLabelValues(normalizeLabel(kind), result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}
	return resultSuccess
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
