// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for errors.Is matching.
var (
	// ErrConnection matches every ConnectionError.
	ErrConnection = errors.New("review store unavailable")

	// ErrQuery matches every QueryError.
	ErrQuery = errors.New("review query failed")

	// ErrCircuitOpen is returned while the circuit breaker rejects fetches.
	ErrCircuitOpen = errors.New("review store circuit open")
)

// ConnectionError reports that the store is unreachable or rejected the
// credentials.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrConnection, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is matches ErrConnection.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// QueryError reports that the review query could not be executed.
type QueryError struct {
	Op    string
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrQuery, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Is matches ErrQuery.
func (e *QueryError) Is(target error) bool { return target == ErrQuery }

// Error kinds used as metric labels.
const (
	KindConnection  = "connection"
	KindQuery       = "query"
	KindCircuitOpen = "circuit_open"
	KindOther       = "other"
)

// ErrorKind classifies err for metrics and HTTP mapping. It returns "" for nil.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCircuitOpen):
		return KindCircuitOpen
	case errors.Is(err, ErrConnection):
		return KindConnection
	case errors.Is(err, ErrQuery):
		return KindQuery
	default:
		return KindOther
	}
}

// classifyQueryError wraps a failed query as a ConnectionError when the
// failure is a lost or refused connection or the store did not answer before
// the context ended, and as a QueryError otherwise.
func classifyQueryError(op, query string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || isConnectionError(err) {
		return &ConnectionError{Op: op, Err: err}
	}
	return &QueryError{Op: op, Query: query, Err: err}
}

// isConnectionError checks if an error indicates database connection loss
// or an authentication failure against MotherDuck.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range connectionMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

var connectionMarkers = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"bad connection",
	"database is closed",
	"no such host",
	"i/o timeout",
	"unauthenticated",
	"invalid token",
	"not authenticated",
	"authentication failed",
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}
