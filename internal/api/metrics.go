package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the HTTP server. Each instance
// owns its registry so that servers (and tests) never share counters.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	rankings     *prometheus.CounterVec
	failures     *prometheus.CounterVec
	alternatives prometheus.Histogram
}

// NewMetrics creates and registers every collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuzzyrank_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fuzzyrank_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rankings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuzzyrank_rankings_total",
			Help: "Completed rankings by result cache outcome.",
		}, []string{"cache"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuzzyrank_ranking_failures_total",
			Help: "Rejected ranking requests by reason.",
		}, []string{"reason"}),
		alternatives: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fuzzyrank_ranking_alternatives",
			Help:    "Number of alternatives per completed ranking.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.rankings, m.failures, m.alternatives,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRanking(cacheHit bool, alternatives int) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.rankings.WithLabelValues(outcome).Inc()
	m.alternatives.Observe(float64(alternatives))
}

func (m *Metrics) observeFailure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}
