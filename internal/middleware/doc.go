// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package middleware provides HTTP middleware components for the dashboard server.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Access Log: one zerolog line per request, tagged with request and correlation IDs
  - Prometheus Metrics: request count, latency and in-flight gauge per route pattern

All three use the http.HandlerFunc shape. The api package adapts them for
chi's r.Use:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Access the request ID in a handler:

	func handler(w http.ResponseWriter, r *http.Request) {
	    id := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("rendering")  // request_id attached
	    _ = id
	}

Thread Safety:

All middleware components are safe for concurrent use. Request state lives in
the request context and the per-request response writer wrapper.

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
  - internal/logging: context-aware zerolog logger
*/
package middleware
