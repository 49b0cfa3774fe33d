// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package validation provides struct validation using go-playground/validator v10.

It holds a thread-safe singleton validator with two custom tags for the
sentiment API:

  - sentiment_mode: polarity or subjectivity, any case
  - review_category: negative, neutral or positive, any case

Error field names come from the `query` struct tag, so a failed check on

	type SamplesRequest struct {
	    Mode string `query:"mode" validate:"omitempty,sentiment_mode"`
	    Size int    `query:"size" validate:"min=0,max=100"`
	}

reports "mode must be polarity or subjectivity". ToAPIError converts the
result to the VALIDATION_ERROR response body used by every endpoint.
*/
package validation
