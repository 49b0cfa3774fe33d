// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reviewscope/internal/models"
)

// healthPingTimeout bounds the store ping of the health endpoints.
const healthPingTimeout = 5 * time.Second

func (h *Handler) storeConnected(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.store.Ping(ctx) == nil
}

func (h *Handler) breakerState() string {
	if h.breaker == nil {
		return ""
	}
	return h.breaker.State()
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns store connectivity, circuit breaker state and uptime. The status is "degraded" when the store does not answer a ping or the breaker is open.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected := h.storeConnected(r.Context())
	breaker := h.breakerState()

	status := "healthy"
	if !connected || breaker == "open" {
		status = "degraded"
	}

	store := ""
	if h.store != nil {
		store = h.store.StoreName()
	}

	respondSuccess(w, models.HealthStatus{
		Status:            status,
		Version:           h.version,
		DatabaseConnected: connected,
		Store:             store,
		BreakerState:      breaker,
		Uptime:            time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of the review store.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the review store answers a ping
//
// @Summary Readiness probe
// @Description Returns 200 OK only if the review store answers a ping. Returns 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	connected := h.storeConnected(r.Context())

	statusCode := http.StatusOK
	status := "ready"
	if !connected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": connected,
			"ready_to_serve":     connected,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
