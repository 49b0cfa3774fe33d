// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package models defines the data structures shared by the review source, the
sentiment pipeline and the HTTP layer.

Review Models:
  - RawReview: one row fetched from the review store
  - ScoredReview: a RawReview with its sentiment and category
  - Category: Negative, Neutral or Positive

Derived Models:
  - Aggregates: mean, positive/negative counts and percentages, per-rating means
  - CategorySample: random reviews from one category
  - Histogram: sentiment distribution chart series

API Models:
  - APIResponse, Metadata, APIError: the response envelope
  - SummaryResponse, ByRatingResponse, DistributionResponse, SamplesResponse,
    ReviewsResponse, DashboardSnapshot: endpoint payloads
  - HealthStatus: health endpoint payload

All JSON field names are snake_case. Nullable aggregate fields are pointers so
an empty review set serializes as null rather than NaN.
*/
package models
