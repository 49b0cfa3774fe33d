// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Review Fetch Metrics
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reviewscope_fetch_duration_seconds",
			Help:    "Duration of review fetches from the store in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	ReviewsFetched = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reviewscope_reviews_fetched",
			Help: "Number of reviews returned by the most recent fetch",
		},
	)

	FetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewscope_fetch_errors_total",
			Help: "Total number of failed review fetches",
		},
		[]string{"kind"}, // "connection", "query", "circuit_open", "other"
	)

	// Pipeline Metrics
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewscope_pipeline_runs_total",
			Help: "Total number of sentiment pipeline runs",
		},
		[]string{"mode", "has_data"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reviewscope_pipeline_duration_seconds",
			Help:    "Duration of sentiment pipeline runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"mode"},
	)

	// Scorer Cache Metrics
	ScorerCacheHits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reviewscope_scorer_cache_hits",
			Help: "Cumulative scorer cache hits",
		},
	)

	ScorerCacheMisses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reviewscope_scorer_cache_misses",
			Help: "Cumulative scorer cache misses",
		},
	)

	ScorerCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reviewscope_scorer_cache_entries",
			Help: "Current number of cached scorer results",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordFetch records one review fetch. kind is empty on success.
func RecordFetch(duration time.Duration, count int, kind string) {
	FetchDuration.Observe(duration.Seconds())
	if kind != "" {
		FetchErrors.WithLabelValues(kind).Inc()
		return
	}
	ReviewsFetched.Set(float64(count))
}

// RecordPipelineRun records one sentiment pipeline run.
func RecordPipelineRun(mode string, hasData bool, duration time.Duration) {
	PipelineRuns.WithLabelValues(mode, strconv.FormatBool(hasData)).Inc()
	PipelineDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// UpdateScorerCache publishes scorer cache counters.
func UpdateScorerCache(hits, misses int64, size int) {
	ScorerCacheHits.Set(float64(hits))
	ScorerCacheMisses.Set(float64(misses))
	ScorerCacheSize.Set(float64(size))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// TrackUptime updates the uptime gauge relative to start.
func TrackUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
