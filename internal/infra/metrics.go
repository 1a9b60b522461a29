package infra

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported by the gateway.
type Metrics struct {
	vendorCalls   *prometheus.CounterVec
	vendorLatency *prometheus.HistogramVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	registry      *prometheus.Registry
}

// NewMetrics creates a registry with vendor and HTTP collectors registered.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		vendorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bria_requests_total",
				Help: "Total number of calls made to the Bria API by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		vendorLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bria_request_duration_seconds",
				Help:    "Latency of Bria API calls in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
			},
			[]string{"endpoint"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests served by route and status",
			},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.vendorCalls,
		m.vendorLatency,
		m.httpRequests,
		m.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveVendorCall records one outbound call.
func (m *Metrics) ObserveVendorCall(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.vendorCalls.WithLabelValues(endpoint, outcome).Inc()
	m.vendorLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
