// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateReviews(); err != nil {
		return err
	}

	if err := c.validateSentiment(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDatabase validates the store location and credential.
func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.IsMotherDuck() {
		if err := c.validateMotherDuckToken(); err != nil {
			return err
		}
		if c.Database.SeedDemoData {
			return fmt.Errorf("SEED_DEMO_DATA is only supported for local DuckDB paths, not %s", MotherDuckScheme)
		}
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("DUCKDB_QUERY_TIMEOUT must not be negative")
	}
	if c.Database.BreakerEnabled && c.Database.BreakerTimeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive when the circuit breaker is enabled")
	}
	return nil
}

// validateMotherDuckToken requires a real bearer token for hosted databases.
func (c *Config) validateMotherDuckToken() error {
	token := strings.TrimSpace(c.Database.MotherDuckToken)
	if token == "" {
		return fmt.Errorf("MOTHERDUCK_TOKEN is required when DUCKDB_PATH uses the %s scheme", MotherDuckScheme)
	}
	if containsPlaceholder(token) {
		return fmt.Errorf("MOTHERDUCK_TOKEN contains a placeholder value; set a real MotherDuck access token")
	}
	return nil
}

// identifierPattern accepts plain and schema-qualified SQL identifiers.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// validateReviews validates the review table and column names. These are
// interpolated into SQL as identifiers, so only plain names are allowed.
func (c *Config) validateReviews() error {
	names := []struct {
		env   string
		value string
	}{
		{"REVIEWS_TABLE", c.Reviews.Table},
		{"REVIEWS_ID_COLUMN", c.Reviews.IDColumn},
		{"REVIEWS_CONTENT_COLUMN", c.Reviews.ContentColumn},
		{"REVIEWS_SCORE_COLUMN", c.Reviews.ScoreColumn},
		{"REVIEWS_EXTRACTED_AT_COLUMN", c.Reviews.ExtractedAtColumn},
	}
	for _, n := range names {
		if !identifierPattern.MatchString(n.value) {
			return fmt.Errorf("%s must be a plain SQL identifier, got %q", n.env, n.value)
		}
	}
	return nil
}

// validSentimentModes defines the allowed scoring modes
var validSentimentModes = map[string]bool{
	"polarity":     true,
	"subjectivity": true,
}

// Sentiment limits
const (
	maxSampleSize    = 100
	maxHistogramBins = 200
)

// validateSentiment validates scoring and presentation settings
func (c *Config) validateSentiment() error {
	if !validSentimentModes[strings.ToLower(c.Sentiment.Mode)] {
		return fmt.Errorf("SENTIMENT_MODE must be one of: polarity, subjectivity")
	}
	if c.Sentiment.SampleSize < 1 || c.Sentiment.SampleSize > maxSampleSize {
		return fmt.Errorf("SENTIMENT_SAMPLE_SIZE must be between 1 and %d", maxSampleSize)
	}
	if c.Sentiment.HistogramBins < 1 || c.Sentiment.HistogramBins > maxHistogramBins {
		return fmt.Errorf("SENTIMENT_HISTOGRAM_BINS must be between 1 and %d", maxHistogramBins)
	}
	if c.Sentiment.CacheSize < 0 {
		return fmt.Errorf("SENTIMENT_CACHE_SIZE must not be negative")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_TOKEN",
	"YOUR_MOTHERDUCK",
	"PLACEHOLDER",
	"TODO",
	"FIXME",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
