// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package config

import (
	"strings"
	"time"
)

// MotherDuckScheme is the DSN prefix DuckDB uses for hosted MotherDuck databases.
const MotherDuckScheme = "md:"

// Config holds all application configuration loaded from defaults, an optional
// config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data Source:
//     - Database: DuckDB / MotherDuck connection, credential, and query timeout
//     - Reviews: table and column names of the review dataset
//
//  2. Analysis:
//     - Sentiment: default scoring mode, sample size, histogram bins, lexicon
//
//  3. Serving:
//     - Server: HTTP server configuration (port, host, timeout)
//     - Security: CORS and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database, &cfg.Reviews)
//
// Validation:
// Load() fails when the MotherDuck credential is missing or is an obvious
// placeholder, when table or column names are not plain SQL identifiers, and
// when numeric settings fall outside their ranges. The process is expected to
// exit on a Load() error rather than start without a working review source.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Reviews   ReviewsConfig   `koanf:"reviews"`
	Sentiment SentimentConfig `koanf:"sentiment"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig holds DuckDB settings.
//
// Path selects the store. "md:" (optionally followed by a database name,
// e.g. "md:reviews") connects to MotherDuck and requires MotherDuckToken.
// Any other value is a local DuckDB file, or ":memory:" for an in-process
// database (used for demos and tests).
type DatabaseConfig struct {
	Path            string        `koanf:"path"`
	MotherDuckToken string        `koanf:"motherduck_token"`
	MaxMemory       string        `koanf:"max_memory"`
	Threads         int           `koanf:"threads"`        // Number of DuckDB threads (0 = use NumCPU)
	QueryTimeout    time.Duration `koanf:"query_timeout"`  // Deadline applied when the caller's context has none
	SeedDemoData    bool          `koanf:"seed_demo_data"` // Create and fill the review table with demo rows (local stores only)
	BreakerEnabled  bool          `koanf:"breaker_enabled"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"` // How long the breaker stays open before probing again
}

// IsMotherDuck reports whether Path points at a hosted MotherDuck database.
func (d *DatabaseConfig) IsMotherDuck() bool {
	return strings.HasPrefix(d.Path, MotherDuckScheme)
}

// ReviewsConfig names the review table and its columns.
// Defaults match an Airbyte-loaded Google Play review export.
type ReviewsConfig struct {
	Table             string `koanf:"table"`
	IDColumn          string `koanf:"id_column"`
	ContentColumn     string `koanf:"content_column"`
	ScoreColumn       string `koanf:"score_column"`
	ExtractedAtColumn string `koanf:"extracted_at_column"`
}

// SentimentConfig holds scoring and presentation settings.
type SentimentConfig struct {
	// Mode is the default scoring mode when a request does not pick one:
	// polarity or subjectivity.
	Mode string `koanf:"mode"`

	// SampleSize is the maximum number of reviews sampled per category.
	SampleSize int `koanf:"sample_size"`

	// HistogramBins is the default number of bins for the distribution chart.
	HistogramBins int `koanf:"histogram_bins"`

	// LexiconPath optionally replaces the embedded lexicon with a YAML file.
	LexiconPath string `koanf:"lexicon_path"`

	// CacheSize bounds the number of memoized text analyses (0 disables the cache).
	CacheSize int `koanf:"cache_size"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, config file, and environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
