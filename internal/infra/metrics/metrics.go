package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry and the ping series. It is constructed
// once at startup and injected into the probe service, so no package-level
// collector state exists.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   prometheus.Counter
	errorsTotal     prometheus.Counter
	requestDuration prometheus.Histogram
}

// New creates a registry with the ping series and the standard Go runtime and
// process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: registry,
		requestsTotal: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ping_requests_total",
			Help: "Total number of /ping requests received.",
		}),
		errorsTotal: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ping_errors_total",
			Help: "Total number of /ping requests that failed with a synthetic error.",
		}),
		requestDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "ping_request_duration_seconds",
			Help: "Time taken to process ping requests.",
			// Injected latency is tens of milliseconds, so the default
			// buckets cover the interesting range.
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordRequest increments the request counter.
func (m *Metrics) RecordRequest() {
	m.requestsTotal.Inc()
}

// RecordError increments the synthetic error counter.
func (m *Metrics) RecordError() {
	m.errorsTotal.Inc()
}

// ObserveDuration records one request duration sample.
func (m *Metrics) ObserveDuration(d time.Duration) {
	m.requestDuration.Observe(d.Seconds())
}

// Gatherer exposes the owned registry for scraping and tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler returns the text exposition handler for the owned registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
