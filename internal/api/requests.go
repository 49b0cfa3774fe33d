// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

// HTTP request validation structs with go-playground/validator tags.
// The query tag names the URL parameter, and validation messages use it.
// A zero numeric field means "use the configured default".

// SentimentRequest holds the parameters shared by every sentiment endpoint.
type SentimentRequest struct {
	Mode string `query:"mode" validate:"omitempty,sentiment_mode"`
}

// DistributionRequest holds the parameters of /sentiment/distribution.
type DistributionRequest struct {
	Mode string `query:"mode" validate:"omitempty,sentiment_mode"`
	Bins int    `query:"bins" validate:"min=0,max=200"`
}

// SamplesRequest holds the parameters of /sentiment/samples.
type SamplesRequest struct {
	Mode string `query:"mode" validate:"omitempty,sentiment_mode"`
	Size int    `query:"size" validate:"min=0,max=100"`
}

// ReviewsRequest holds the parameters of /reviews.
type ReviewsRequest struct {
	Mode     string `query:"mode" validate:"omitempty,sentiment_mode"`
	Category string `query:"category" validate:"omitempty,review_category"`
	Limit    int    `query:"limit" validate:"min=1,max=1000"`
	Offset   int    `query:"offset" validate:"min=0,max=1000000"`
}

// defaultReviewsLimit is the page size when /reviews has no limit.
const defaultReviewsLimit = 100
