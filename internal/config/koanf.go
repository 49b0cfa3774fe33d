// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reviewscope/config.yaml",
	"/etc/reviewscope/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:            MotherDuckScheme,
			MotherDuckToken: "", // Required for md: paths, never defaulted
			MaxMemory:       "1GB",
			Threads:         0, // 0 = use runtime.NumCPU()
			QueryTimeout:    30 * time.Second,
			SeedDemoData:    false,
			BreakerEnabled:  true,
			BreakerTimeout:  time.Minute,
		},
		Reviews: ReviewsConfig{
			Table:             "spotify_reviews",
			IDColumn:          "_airbyte_raw_id",
			ContentColumn:     "content",
			ScoreColumn:       "score",
			ExtractedAtColumn: "_airbyte_extracted_at",
		},
		Sentiment: SentimentConfig{
			Mode:          "polarity",
			SampleSize:    5,
			HistogramBins: 20,
			LexiconPath:   "", // Embedded lexicon
			CacheSize:     10000,
		},
		Server: ServerConfig{
			Port:    8501,
			Host:    "0.0.0.0",
			Timeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults. The returned Config has passed Validate.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// MOTHERDUCK_TOKEN -> database.motherduck_token
	// REVIEWS_TABLE -> reviews.table
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Database mappings
	"duckdb_path":          "database.path",
	"motherduck_token":     "database.motherduck_token",
	"duckdb_max_memory":    "database.max_memory",
	"duckdb_threads":       "database.threads",
	"duckdb_query_timeout": "database.query_timeout",
	"seed_demo_data":       "database.seed_demo_data",
	"breaker_enabled":      "database.breaker_enabled",
	"breaker_timeout":      "database.breaker_timeout",

	// Review dataset mappings
	"reviews_table":               "reviews.table",
	"reviews_id_column":           "reviews.id_column",
	"reviews_content_column":      "reviews.content_column",
	"reviews_score_column":        "reviews.score_column",
	"reviews_extracted_at_column": "reviews.extracted_at_column",

	// Sentiment mappings
	"sentiment_mode":           "sentiment.mode",
	"sentiment_sample_size":    "sentiment.sample_size",
	"sentiment_histogram_bins": "sentiment.histogram_bins",
	"sentiment_lexicon_path":   "sentiment.lexicon_path",
	"sentiment_cache_size":     "sentiment.cache_size",

	// Server mappings
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - MOTHERDUCK_TOKEN -> database.motherduck_token
//   - DUCKDB_PATH -> database.path
//   - SENTIMENT_MODE -> sentiment.mode
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables
	// never leak into the configuration.
	return ""
}

// GetKoanfInstance returns a new Koanf instance for advanced usage such as
// custom configuration sources in tests.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}
