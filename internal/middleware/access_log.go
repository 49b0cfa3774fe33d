// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reviewscope/internal/logging"
)

// AccessLog writes one structured line per request through the context
// logger, so request_id and correlation_id are attached when RequestID ran
// first. Server errors log at warn, everything else at debug.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(ww, r)

		level := zerolog.DebugLevel
		if ww.statusCode >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		logging.Ctx(r.Context()).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", ww.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("request completed")
	}
}
