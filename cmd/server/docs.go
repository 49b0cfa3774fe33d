// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

// Package main provides the Reviewscope HTTP server
//
// Reviewscope API exposes sentiment analytics over app store reviews.
//
// @title Reviewscope API
// @version 1.0
// @description Sentiment analytics for app store reviews stored in DuckDB or MotherDuck.
// @description
// @description ## Features
// @description
// @description - **Two scoring modes**: polarity (-1 to 1) and subjectivity (0 to 1)
// @description - **Summary metrics**: mean sentiment, positive and negative percentages
// @description - **Breakdowns**: mean sentiment per star rating, score distribution histogram
// @description - **Samples**: random example reviews per sentiment category
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Health endpoints are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reviewscope/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness, readiness and store status
//
// @tag.name Sentiment
// @tag.description Sentiment aggregates, distributions and samples
//
// @tag.name Reviews
// @tag.description Scored reviews filtered by category
package main
