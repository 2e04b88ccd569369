// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP

var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"method", "path"},
)

var HTTPRequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
)

// Metadata cache

var CacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "metadata_cache_hits_total",
		Help: "Total number of metadata cache hits",
	},
	[]string{"kind"},
)

var CacheMisses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "metadata_cache_misses_total",
		Help: "Total number of metadata cache misses",
	},
	[]string{"kind"},
)

var CacheErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "metadata_cache_errors_total",
		Help: "Total number of metadata cache errors",
	},
	[]string{"operation"},
)

var CacheStaleWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "metadata_cache_stale_writes_total",
		Help: "Total number of metadata cache writes dropped because the cache was invalidated meanwhile",
	},
	[]string{"kind"},
)

var CacheWarmups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "metadata_cache_warmups_total",
		Help: "Total number of scheduled metadata cache rebuilds",
	},
	[]string{"status"},
)

// Pricing

var PriceCalculations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pricing_calculations_total",
		Help: "Total number of product prices calculated",
	},
	[]string{"adjustment_type", "adjustment_increment"},
)

var ValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pricing_validation_failures_total",
		Help: "Total number of rejected price adjustments",
	},
	[]string{"reason"},
)

var ProfilesSaved = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pricing_profiles_saved_total",
		Help: "Total number of pricing profile writes",
	},
	[]string{"operation"},
)
