// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/reviewscope/internal/api"
	"github.com/tomtom215/reviewscope/internal/config"
	"github.com/tomtom215/reviewscope/internal/database"
	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/metrics"
	"github.com/tomtom215/reviewscope/internal/sentiment"
	"github.com/tomtom215/reviewscope/internal/supervisor"
	"github.com/tomtom215/reviewscope/internal/supervisor/services"
)

// housekeepingInterval is how often the uptime and cache gauges refresh.
const housekeepingInterval = 15 * time.Second

// buildScorer loads the lexicon (the built-in one when no path is set) and
// wraps the analyzer in the memoizing cache.
func buildScorer(cfg *config.SentimentConfig) (*sentiment.CachedAnalyzer, error) {
	var lex *sentiment.Lexicon
	if cfg.LexiconPath != "" {
		var err error
		lex, err = sentiment.LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		logging.Info().
			Str("path", cfg.LexiconPath).
			Int("entries", lex.Len()).
			Msg("Custom sentiment lexicon loaded")
	}
	analyzer := sentiment.NewAnalyzer(lex)
	return sentiment.NewCachedAnalyzer(analyzer, cfg.CacheSize), nil
}

// buildSource wraps the store in a circuit breaker when enabled. The
// returned BreakerStatus is nil when no breaker is installed.
func buildSource(store database.ReviewSource, cfg *config.DatabaseConfig) (database.ReviewSource, api.BreakerStatus) {
	if !cfg.BreakerEnabled {
		return store, nil
	}
	breaker := database.NewBreakerSource(store, cfg.BreakerTimeout)
	logging.Info().Dur("open_timeout", cfg.BreakerTimeout).Msg("Store circuit breaker enabled")
	return breaker, breaker
}

// newHTTPServer builds the listener for the router.
func newHTTPServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// addHousekeeping registers the periodic gauge updates in the data layer.
func addHousekeeping(tree *supervisor.Tree, start time.Time, scorer *sentiment.CachedAnalyzer) {
	tree.AddDataService(services.NewTickerService("uptime", housekeepingInterval,
		func(context.Context) { metrics.TrackUptime(start) }))
	tree.AddDataService(services.NewTickerService("scorer-cache", housekeepingInterval,
		func(context.Context) {
			stats := scorer.Stats()
			metrics.UpdateScorerCache(stats.Hits, stats.Misses, stats.Size)
		}))
}
