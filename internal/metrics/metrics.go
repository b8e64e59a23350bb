package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Voyager
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Search Metrics
	SearchesTotal        prometheus.CounterVec
	SearchDuration       prometheus.Histogram
	RoutesFoundPerSearch prometheus.Histogram

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Job Metrics
	FlightsCompletedTotal prometheus.Counter
	CompletionJobDuration prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voyager_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "voyager_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		SearchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_route_searches_total",
				Help: "Total route searches by outcome",
			},
			[]string{"outcome"},
		),
		SearchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "voyager_route_search_duration_seconds",
				Help:    "End-to-end route search latency including catalog load",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		RoutesFoundPerSearch: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "voyager_routes_found_per_search",
				Help:    "Size of the feasible route set per search",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyager_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		FlightsCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "voyager_flights_completed_total",
				Help: "Flights transitioned to completed by the background job",
			},
		),
		CompletionJobDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "voyager_completion_job_duration_seconds",
				Help:    "Flight completion job run time",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		),
	}
}
