// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package database provides the review store backed by DuckDB.

The store is a MotherDuck database when the configured path starts with
"md:" (authenticated with MOTHERDUCK_TOKEN) or a local DuckDB file
otherwise. Tests and demos use ":memory:" with SeedDemoData.

# Review Query

FetchReviews runs a single read-only query built with squirrel:

	SELECT CAST("_airbyte_raw_id" AS VARCHAR), "content",
	       CAST("score" AS BIGINT), "_airbyte_extracted_at"
	FROM "spotify_reviews"
	WHERE ("content" IS NOT NULL AND "content" <> ?)

Table and column names come from config and are validated as identifiers
before they reach the query.

# Errors

  - *ConnectionError (errors.Is ErrConnection): store unreachable,
    credentials rejected, or circuit breaker open
  - *QueryError (errors.Is ErrQuery): the query could not be executed
  - ErrCircuitOpen: BreakerSource is rejecting calls

ErrorKind maps any of these to a metric label.

# Circuit Breaker

BreakerSource wraps any ReviewSource with sony/gobreaker. It opens after 60%
of at least 10 fetches fail with a connection error, and probes again after
the configured timeout.

# Thread Safety

DB and BreakerSource are safe for concurrent use.
*/
package database
