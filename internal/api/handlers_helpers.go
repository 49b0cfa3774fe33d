// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reviewscope/internal/database"
	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
	"github.com/tomtom215/reviewscope/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimit          = "RATE_LIMIT_EXCEEDED"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, queryTime time.Duration) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: queryTime.Milliseconds(),
		},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}
	respondAPIError(w, status, &models.APIError{Code: code, Message: message})
}

func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: apiErr,
	})
}

// storeErrorStatus maps a render error to an HTTP status, error code and
// client-facing message. Store internals never reach the client.
func storeErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, database.ErrCircuitOpen):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Review store is temporarily unavailable, retrying shortly"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Review fetch timed out"
	case errors.Is(err, database.ErrConnection):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Review store is unreachable or rejected the credentials"
	case errors.Is(err, database.ErrQuery):
		return http.StatusInternalServerError, ErrCodeDatabase,
			"Review query failed"
	default:
		return http.StatusInternalServerError, ErrCodeInternal,
			"Internal server error"
	}
}

// respondRenderError writes the error response for a failed render.
// The service has already logged the cause.
func respondRenderError(w http.ResponseWriter, err error) {
	status, code, message := storeErrorStatus(err)
	respondAPIError(w, status, &models.APIError{Code: code, Message: message})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}

// intParam reads an integer query parameter. A missing parameter yields
// defaultValue; a malformed one is a validation error.
func intParam(r *http.Request, key string, defaultValue int) (int, *models.APIError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &models.APIError{
			Code:    ErrCodeValidation,
			Message: key + " must be an integer",
			Details: map[string]interface{}{
				"field": key,
				"value": sanitizeLogValue(value),
			},
		}
	}
	return n, nil
}

// resolveMode parses an already validated mode parameter, falling back to
// the handler default when it is empty.
func (h *Handler) resolveMode(raw string) sentiment.Mode {
	if raw == "" {
		return h.defaultMode
	}
	mode, err := sentiment.ParseMode(raw)
	if err != nil {
		return h.defaultMode
	}
	return mode
}

// queryTime is the store plus pipeline time of a snapshot.
func queryTime(fetchMS, pipelineMS int64) time.Duration {
	return time.Duration(fetchMS+pipelineMS) * time.Millisecond
}
