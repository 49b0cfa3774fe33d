// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reviewscope/internal/dashboard"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

// StoreStatus is the part of the review store the health endpoints need.
type StoreStatus interface {
	Ping(ctx context.Context) error
	StoreName() string
}

// BreakerStatus reports the circuit breaker state guarding the store.
type BreakerStatus interface {
	State() string
}

// HandlerConfig holds optional handler settings.
type HandlerConfig struct {
	// DefaultMode is used when a request has no mode parameter.
	DefaultMode sentiment.Mode

	// Version is reported by the health endpoint.
	Version string

	// Breaker is nil when the store is not wrapped in a circuit breaker.
	Breaker BreakerStatus
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_health.go: health and probe endpoints
//   - handlers_sentiment.go: JSON sentiment endpoints
//   - handlers_page.go: the HTML dashboard
type Handler struct {
	service     *dashboard.Service
	store       StoreStatus
	breaker     BreakerStatus
	defaultMode sentiment.Mode
	version     string
	startTime   time.Time
}

// NewHandler creates a handler that renders through service and reports
// health from store.
//
// Example:
//
//	handler := api.NewHandler(service, db, api.HandlerConfig{DefaultMode: mode})
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(":8501", router.SetupChi())
func NewHandler(service *dashboard.Service, store StoreStatus, cfg HandlerConfig) *Handler {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if !cfg.DefaultMode.Valid() {
		cfg.DefaultMode = sentiment.ModePolarity
	}
	return &Handler{
		service:     service,
		store:       store,
		breaker:     cfg.Breaker,
		defaultMode: cfg.DefaultMode,
		version:     cfg.Version,
		startTime:   time.Now(),
	}
}
