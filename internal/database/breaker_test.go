// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reviewscope/internal/models"
)

// stubSource returns a fixed result and counts calls.
type stubSource struct {
	reviews []models.RawReview
	err     error
	calls   int
}

func (s *stubSource) FetchReviews(context.Context) ([]models.RawReview, error) {
	s.calls++
	return s.reviews, s.err
}

func TestBreakerSource_PassesThrough(t *testing.T) {
	inner := &stubSource{reviews: []models.RawReview{{ID: "1", Content: "good", Score: 5}}}
	b := NewBreakerSource(inner, time.Minute)

	got, err := b.FetchReviews(context.Background())
	if err != nil {
		t.Fatalf("FetchReviews() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("FetchReviews() = %+v", got)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

// TestBreakerSource_OpensAfterConnectionFailures verifies the circuit opens
// once 10 requests have failed at a rate of at least 60%.
func TestBreakerSource_OpensAfterConnectionFailures(t *testing.T) {
	inner := &stubSource{err: &ConnectionError{Op: "fetch reviews", Err: errors.New("connection refused")}}
	b := NewBreakerSource(inner, time.Minute)

	for i := 0; i < 10; i++ {
		if _, err := b.FetchReviews(context.Background()); !errors.Is(err, ErrConnection) {
			t.Fatalf("call %d error = %v, want ErrConnection", i, err)
		}
	}
	if b.cb.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", b.cb.State())
	}

	calls := inner.calls
	_, err := b.FetchReviews(context.Background())
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("error = %v, want ErrCircuitOpen", err)
	}
	if !errors.Is(err, ErrConnection) {
		t.Error("open circuit error should also match ErrConnection")
	}
	if ErrorKind(err) != KindCircuitOpen {
		t.Errorf("ErrorKind() = %q, want %q", ErrorKind(err), KindCircuitOpen)
	}
	if inner.calls != calls {
		t.Error("open circuit still called the inner source")
	}
	if b.State() != "open" {
		t.Errorf("State() = %q, want open", b.State())
	}
}

func TestBreakerSource_QueryErrorsDoNotTrip(t *testing.T) {
	inner := &stubSource{err: &QueryError{Op: "fetch reviews", Err: errors.New("Catalog Error: Table does not exist")}}
	b := NewBreakerSource(inner, time.Minute)

	for i := 0; i < 20; i++ {
		_, err := b.FetchReviews(context.Background())
		if !errors.Is(err, ErrQuery) {
			t.Fatalf("call %d error = %v, want ErrQuery", i, err)
		}
	}
	if b.cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", b.cb.State())
	}
}

func TestBreakerSource_OpensAfterTimeouts(t *testing.T) {
	inner := &stubSource{err: classifyQueryError("fetch reviews", "SELECT", context.DeadlineExceeded)}
	b := NewBreakerSource(inner, time.Minute)

	for i := 0; i < 10; i++ {
		if _, err := b.FetchReviews(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("call %d error = %v, want DeadlineExceeded", i, err)
		}
	}
	if b.cb.State() != gobreaker.StateOpen {
		t.Errorf("state = %v, want open", b.cb.State())
	}
}

func TestBreakerSource_CallerCancelDoesNotTrip(t *testing.T) {
	inner := &stubSource{err: classifyQueryError("fetch reviews", "SELECT", context.Canceled)}
	b := NewBreakerSource(inner, time.Minute)

	for i := 0; i < 20; i++ {
		if _, err := b.FetchReviews(context.Background()); !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d error = %v, want Canceled", i, err)
		}
	}
	if b.cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", b.cb.State())
	}
}

func TestStateToString(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(99), "unknown", -1},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.num {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.num)
		}
	}
}
