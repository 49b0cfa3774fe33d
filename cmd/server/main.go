// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/reviewscope/docs" // Import generated swagger docs
	"github.com/tomtom215/reviewscope/internal/api"
	"github.com/tomtom215/reviewscope/internal/config"
	"github.com/tomtom215/reviewscope/internal/dashboard"
	"github.com/tomtom215/reviewscope/internal/database"
	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/metrics"
	"github.com/tomtom215/reviewscope/internal/sentiment"
	"github.com/tomtom215/reviewscope/internal/supervisor"
	"github.com/tomtom215/reviewscope/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Reviewscope stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	start := time.Now()

	logging.Info().
		Str("version", version).
		Str("store_path", logging.SanitizeDSN(cfg.Database.Path)).
		Str("mode", cfg.Sentiment.Mode).
		Msg("Starting Reviewscope")

	db, err := database.New(&cfg.Database, &cfg.Reviews)
	if err != nil {
		return fmt.Errorf("failed to open review store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing review store")
		}
	}()

	if cfg.Database.SeedDemoData {
		logging.Info().Msg("Demo data seeding enabled (SEED_DEMO_DATA=true)")
		if err := db.SeedDemoData(context.Background()); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	mode, err := sentiment.ParseMode(cfg.Sentiment.Mode)
	if err != nil {
		return fmt.Errorf("invalid sentiment mode: %w", err)
	}

	scorer, err := buildScorer(&cfg.Sentiment)
	if err != nil {
		return err
	}
	source, breaker := buildSource(db, &cfg.Database)

	service := dashboard.NewService(source, scorer, dashboard.Config{
		SampleSize:    cfg.Sentiment.SampleSize,
		HistogramBins: cfg.Sentiment.HistogramBins,
	})

	handler := api.NewHandler(service, db, api.HandlerConfig{
		DefaultMode: mode,
		Version:     version,
		Breaker:     breaker,
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	server := newHTTPServer(&cfg.Server, router.SetupChi())

	metrics.SetAppInfo(version, runtime.Version())

	// Supervisor events go through slog, bridged to zerolog
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	addHousekeeping(tree, start, scorer)
	tree.AddAPIService(services.NewHTTPServerService(server, tree.Config().ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("addr", server.Addr).
		Str("store", db.StoreName()).
		Msg("HTTP server starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree error: %w", err)
	}
	logging.Info().Msg("Shutdown signal received, supervisor stopped")

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return nil
}
