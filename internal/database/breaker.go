// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/metrics"
	"github.com/tomtom215/reviewscope/internal/models"
)

// BreakerName labels the review store breaker in metrics.
const BreakerName = "review-store"

// BreakerSource wraps a ReviewSource with a circuit breaker so an
// unreachable store fails fast instead of holding every dashboard request
// for the full query timeout.
//
// Only connection failures count against the breaker. A QueryError means the
// store answered, so it never opens the circuit.
type BreakerSource struct {
	inner ReviewSource
	cb    *gobreaker.CircuitBreaker[[]models.RawReview]
	name  string
}

// NewBreakerSource wraps inner.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - timeout before attempting recovery (default 1 minute)
// - Opens after 60% failure rate with minimum 10 requests
func NewBreakerSource(inner ReviewSource, timeout time.Duration) *BreakerSource {
	if timeout <= 0 {
		timeout = time.Minute
	}
	name := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.RawReview](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				log := breakerLogger()
				log.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("Opening circuit")
			}
			return shouldTrip
		},

		// A caller that hangs up is not a store failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || !errors.Is(err, ErrConnection)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			log := breakerLogger()
			log.Info().Str("from", fromStr).Str("to", toStr).Msg("State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerSource{inner: inner, cb: cb, name: name}
}

// FetchReviews implements ReviewSource. While the circuit is open it returns
// an error matching both ErrCircuitOpen and ErrConnection.
func (b *BreakerSource) FetchReviews(ctx context.Context) ([]models.RawReview, error) {
	reviews, err := b.cb.Execute(func() ([]models.RawReview, error) {
		return b.inner.FetchReviews(ctx)
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
		return reviews, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		log := breakerLogger()
		log.Warn().Err(err).Msg("Request rejected")
		return nil, &ConnectionError{Op: "fetch reviews", Err: fmt.Errorf("%w: %w", ErrCircuitOpen, err)}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	counts := b.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	return nil, err
}

// breakerLogger tags breaker events so they can be filtered from fetch logs.
func breakerLogger() zerolog.Logger {
	return logging.WithComponent("store-breaker")
}

// State returns the breaker state: closed, half-open or open.
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
