// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package models

import (
	"time"
)

// APIResponse is the envelope used by every JSON endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"mode": "polarity", "aggregates": {...}},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 412}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "SERVICE_UNAVAILABLE", "message": "Review store is unreachable"},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
// QueryTimeMS is the time spent fetching and scoring reviews for this response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid query parameters (unknown mode, bad limit)
//   - DATABASE_ERROR: The review query failed
//   - SERVICE_UNAVAILABLE: The review store is unreachable or credentials were rejected
//   - NOT_FOUND: Unknown route
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo describes one page of an offset-paginated listing.
type PaginationInfo struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	TotalCount int  `json:"total_count"`
	HasMore    bool `json:"has_more"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Store             string  `json:"store"` // "motherduck" or "duckdb"
	BreakerState      string  `json:"breaker_state,omitempty"`
	Uptime            float64 `json:"uptime_seconds"`
}

// SummaryResponse is the payload of GET /api/v1/sentiment/summary.
type SummaryResponse struct {
	Mode       string     `json:"mode"`
	Aggregates Aggregates `json:"aggregates"`
	Notice     string     `json:"notice,omitempty"`
}

// ByRatingResponse is the payload of GET /api/v1/sentiment/by-rating.
type ByRatingResponse struct {
	Mode     string       `json:"mode"`
	HasData  bool         `json:"has_data"`
	ByRating []RatingMean `json:"by_rating"`
}

// DistributionResponse is the payload of GET /api/v1/sentiment/distribution.
type DistributionResponse struct {
	Mode      string    `json:"mode"`
	HasData   bool      `json:"has_data"`
	Histogram Histogram `json:"histogram"`
}

// SamplesResponse is the payload of GET /api/v1/sentiment/samples.
// Categories without reviews are omitted from Samples.
type SamplesResponse struct {
	Mode    string           `json:"mode"`
	Samples []CategorySample `json:"samples"`
}

// ReviewsResponse is the payload of GET /api/v1/reviews.
type ReviewsResponse struct {
	Mode       string         `json:"mode"`
	Category   *Category      `json:"category,omitempty"`
	Reviews    []ScoredReview `json:"reviews"`
	Pagination PaginationInfo `json:"pagination"`
}

// DashboardSnapshot is everything one dashboard render needs, computed from
// a single fetch and a single pipeline run.
type DashboardSnapshot struct {
	Mode        string           `json:"mode"`
	GeneratedAt time.Time        `json:"generated_at"`
	Aggregates  Aggregates       `json:"aggregates"`
	Histogram   Histogram        `json:"histogram"`
	Samples     []CategorySample `json:"samples"`
	Notice      string           `json:"notice,omitempty"`
	FetchMS     int64            `json:"fetch_ms"`
	PipelineMS  int64            `json:"pipeline_ms"`
}
