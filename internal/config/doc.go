// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package config provides centralized configuration management for Reviewscope.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file (CONFIG_PATH, ./config.yaml, /etc/reviewscope/config.yaml), then
environment variables. Only environment variables listed in the mapping table
are read.

# Environment Variables

Review source (DatabaseConfig, ReviewsConfig):
  - DUCKDB_PATH: "md:" or "md:<database>" for MotherDuck, a file path, or ":memory:" (default: md:)
  - MOTHERDUCK_TOKEN: MotherDuck access token (required for md: paths)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: Thread count (default: CPU count)
  - DUCKDB_QUERY_TIMEOUT: Fetch deadline (default: 30s)
  - SEED_DEMO_DATA: Create demo reviews in a local database (default: false)
  - BREAKER_ENABLED, BREAKER_TIMEOUT: Fail fast while the store is down (default: true, 1m)
  - REVIEWS_TABLE: Review table (default: spotify_reviews)
  - REVIEWS_ID_COLUMN, REVIEWS_CONTENT_COLUMN, REVIEWS_SCORE_COLUMN,
    REVIEWS_EXTRACTED_AT_COLUMN: Column names (Airbyte defaults)

Sentiment (SentimentConfig):
  - SENTIMENT_MODE: polarity or subjectivity (default: polarity)
  - SENTIMENT_SAMPLE_SIZE: Reviews sampled per category (default: 5)
  - SENTIMENT_HISTOGRAM_BINS: Distribution chart bins (default: 20)
  - SENTIMENT_LEXICON_PATH: YAML lexicon replacing the embedded one
  - SENTIMENT_CACHE_SIZE: Memoized analyses (default: 10000)

HTTP Server (ServerConfig, SecurityConfig):
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT (default: 0.0.0.0, 8501, 30s)
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("Reading reviews from %s\n", cfg.Reviews.Table)
*/
package config
