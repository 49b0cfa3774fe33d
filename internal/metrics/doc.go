// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package metrics provides Prometheus metrics collection for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8501/metrics

# Available Metrics

Review Metrics:
  - reviewscope_fetch_duration_seconds: Store fetch latency (histogram)
  - reviewscope_reviews_fetched: Rows returned by the last fetch (gauge)
  - reviewscope_fetch_errors_total: Failed fetches (counter)
    Labels: kind (connection, query, circuit_open, other)
  - reviewscope_pipeline_runs_total: Pipeline runs (counter)
    Labels: mode, has_data
  - reviewscope_pipeline_duration_seconds: Pipeline run latency (histogram)
    Labels: mode
  - reviewscope_scorer_cache_hits, reviewscope_scorer_cache_misses,
    reviewscope_scorer_cache_entries: Scorer memoization (gauges)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

Application Metrics:
  - app_info: Labels version, go_version
  - app_uptime_seconds

# Usage

	start := time.Now()
	reviews, err := store.FetchReviews(ctx)
	metrics.RecordFetch(time.Since(start), len(reviews), "")

# Thread Safety

All functions are safe for concurrent use; Prometheus collectors are
internally synchronized.
*/
package metrics
