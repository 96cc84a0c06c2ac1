// Package metrics exposes Prometheus collectors for the demo endpoints.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Metrics owns a private registry so several servers (and tests) can coexist
// in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	filterDuration  prometheus.Histogram
	filterPixels    prometheus.Counter
	crops           *prometheus.CounterVec
	advisories      *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		filterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "edges",
			Name:      "filter_duration_seconds",
			Help:      "Time spent in the gradient-magnitude filter.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		filterPixels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "edges",
			Name:      "pixels_total",
			Help:      "Pixels processed by the gradient-magnitude filter.",
		}),
		crops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crop",
			Name:      "recommendations_total",
			Help:      "Crop recommendations by label.",
		}, []string{"crop"}),
		advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "crop",
			Name:      "advisories_total",
			Help:      "Advisory notes emitted, by note text.",
		}, []string{"note"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.filterDuration,
		m.filterPixels,
		m.crops,
		m.advisories,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveFilter records one run of the edge filter over width×height pixels.
func (m *Metrics) ObserveFilter(width, height int, elapsed time.Duration) {
	m.filterDuration.Observe(elapsed.Seconds())
	m.filterPixels.Add(float64(width * height))
}

// ObserveRecommendation records the label and notes of one recommendation.
func (m *Metrics) ObserveRecommendation(crop string, notes []string) {
	m.crops.WithLabelValues(crop).Inc()
	for _, n := range notes {
		m.advisories.WithLabelValues(n).Inc()
	}
}
