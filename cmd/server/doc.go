// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Command server runs the Reviewscope dashboard and JSON API.

# Startup

The server initializes components in this order and exits on the first
failure:

 1. Configuration (koanf: defaults, optional YAML file, environment)
 2. Logging (zerolog)
 3. Review store (DuckDB or MotherDuck, verified with a ping)
 4. Demo data, when SEED_DEMO_DATA=true on a local store
 5. Scorer (lexicon, memoizing cache) and dashboard service
 6. Chi router with middleware
 7. Supervisor tree running the HTTP server and housekeeping tickers

# Configuration

Common environment variables:

	DUCKDB_PATH             store path, "md:" or "md:<database>" for MotherDuck (default md:)
	MOTHERDUCK_TOKEN        required for md: paths
	SEED_DEMO_DATA          seed a local store with demo reviews
	SENTIMENT_MODE          default mode: polarity or subjectivity
	SENTIMENT_LEXICON_PATH  YAML lexicon replacing the built-in one
	HTTP_PORT               listen port (default 8501)
	LOG_LEVEL               trace, debug, info, warn, error
	LOG_FORMAT              json or console

# Examples

Local demo store:

	export DUCKDB_PATH=./data/reviews.duckdb
	export SEED_DEMO_DATA=true
	./reviewscope

MotherDuck:

	export DUCKDB_PATH=md:reviews
	export MOTHERDUCK_TOKEN=...
	./reviewscope

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests within the shutdown timeout, then the store is closed.
*/
package main
