// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package api provides the HTTP surface of the review sentiment dashboard.

Routing uses go-chi/chi with the chi ecosystem middleware (go-chi/cors,
go-chi/httprate). Every request goes through one dashboard.Service render:
one fetch from the review store and one pipeline run.

Endpoints:

	GET /                                   server-rendered dashboard page
	GET /api/v1/health                      store connectivity and breaker state
	GET /api/v1/health/live                 liveness probe
	GET /api/v1/health/ready                readiness probe (store ping)
	GET /api/v1/sentiment/summary           aggregates for ?mode=
	GET /api/v1/sentiment/by-rating         mean sentiment per star rating
	GET /api/v1/sentiment/distribution      histogram, ?bins=
	GET /api/v1/sentiment/samples           random samples per category, ?size=
	GET /api/v1/reviews                     scored reviews, ?category=&limit=&offset=
	GET /api/v1/dashboard                   full snapshot
	GET /metrics                            Prometheus metrics
	GET /swagger/*                          OpenAPI documentation

Response Format:

JSON endpoints use the models.APIResponse envelope, encoded with goccy/go-json.
Store errors map to status codes by type:

	database.ErrConnection (incl. open breaker)  503 SERVICE_UNAVAILABLE
	database.ErrQuery                            500 DATABASE_ERROR
	invalid query parameters                     400 VALIDATION_ERROR

An empty review set is not an error: responses carry has_data=false and
null means and percentages.
*/
package api
