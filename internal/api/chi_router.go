// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/reviewscope/internal/middleware"
)

// Router binds handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(SecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Dashboard Page
	// ========================
	r.With(router.chiMiddleware.RateLimit(), chiMiddleware(middleware.PrometheusMetrics)).
		Get("/", router.handler.DashboardPage)

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited so probes keep working under load.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Sentiment API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Route("/sentiment", func(r chi.Router) {
			r.Get("/summary", router.handler.SentimentSummary)
			r.Get("/by-rating", router.handler.SentimentByRating)
			r.Get("/distribution", router.handler.SentimentDistribution)
			r.Get("/samples", router.handler.SentimentSamples)
		})
		r.Get("/reviews", router.handler.Reviews)
		r.Get("/dashboard", router.handler.Dashboard)
	})

	// ========================
	// Operations
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
