// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ctxKey is unexported so no other package can collide with these keys.
type ctxKey int

const (
	// correlationKey ties together the log lines of one dashboard render.
	correlationKey ctxKey = iota
	// requestKey carries the HTTP request ID.
	requestKey
)

// GenerateCorrelationID returns a short ID (8 hex characters of a UUIDv4).
func GenerateCorrelationID() string {
	return GenerateRequestID()[:8]
}

// GenerateRequestID returns a random UUIDv4 string.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithCorrelationID stores id as the correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

// ContextWithNewCorrelationID adds a fresh correlation ID unless ctx
// already carries one.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	if CorrelationIDFromContext(ctx) != "" {
		return ctx
	}
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationKey)
}

// ContextWithRequestID stores id as the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey, id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestKey)
}

func stringValue(ctx context.Context, key ctxKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// Ctx returns the global logger with request_id and correlation_id fields
// taken from ctx when present.
//
//	logging.Ctx(ctx).Info().Int("rows", n).Msg("Fetched reviews")
func Ctx(ctx context.Context) *zerolog.Logger {
	fields := With()
	if id := CorrelationIDFromContext(ctx); id != "" {
		fields = fields.Str("correlation_id", id)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		fields = fields.Str("request_id", id)
	}
	l := fields.Logger()
	return &l
}
