package core

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsExposer is implemented by collectors that can serve their metrics
// over HTTP. MountRoutes wires such a collector to GET /metrics.
type MetricsExposer interface {
	Handler() http.Handler
}

// PrometheusCollector records API request telemetry to a dedicated Prometheus
// registry. It implements both MetricsCollector and MetricsExposer.
type PrometheusCollector struct {
	registry *prometheus.Registry

	requestsTotal          *prometheus.CounterVec
	requestDurationSeconds *prometheus.HistogramVec
}

// NewPrometheusCollector creates a collector with request count and latency
// metrics registered under the given namespace, alongside the standard Go
// runtime and process collectors.
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &PrometheusCollector{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of API requests by method, endpoint, and status.",
		}, []string{"method", "endpoint", "status"}),
		requestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}

	registry.MustRegister(c.requestsTotal)
	registry.MustRegister(c.requestDurationSeconds)

	return c
}

// RecordRequest implements MetricsCollector.
func (c *PrometheusCollector) RecordRequest(method, endpoint, status string, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, endpoint, status).Inc()
	c.requestDurationSeconds.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Handler implements MetricsExposer, serving the Prometheus exposition format.
func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
