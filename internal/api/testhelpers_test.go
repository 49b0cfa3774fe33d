// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reviewscope/internal/dashboard"
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

// stubSource is a ReviewSource returning fixed reviews or a fixed error.
type stubSource struct {
	reviews []models.RawReview
	err     error
	calls   int
}

func (s *stubSource) FetchReviews(context.Context) ([]models.RawReview, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.reviews, nil
}

// stubStore implements StoreStatus.
type stubStore struct {
	pingErr error
	name    string
}

func (s *stubStore) Ping(context.Context) error { return s.pingErr }
func (s *stubStore) StoreName() string          { return s.name }

type stubBreaker string

func (b stubBreaker) State() string { return string(b) }

func review(id, content string, score int) models.RawReview {
	return models.RawReview{
		ID:          id,
		Content:     content,
		Score:       score,
		ExtractedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// threeReviews scores 0.6, -1.0 and 0.42 in polarity mode.
func threeReviews() []models.RawReview {
	return []models.RawReview{
		review("r1", "I love this app", 5),
		review("r2", "Worst app ever", 1),
		review("r3", "It is fine", 3),
	}
}

// newTestHandler builds a handler over source with a seeded sampler.
func newTestHandler(t *testing.T, source *stubSource, store StoreStatus) *Handler {
	t.Helper()
	svc := dashboard.NewService(source, sentiment.NewAnalyzer(nil), dashboard.Config{
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	if store == nil {
		store = &stubStore{name: "memory"}
	}
	return NewHandler(svc, store, HandlerConfig{Version: "test"})
}

// newTestServer wires the full router with rate limiting disabled.
func newTestServer(t *testing.T, source *stubSource) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(newTestHandler(t, source, nil), NewChiMiddleware(cfg)).SetupChi()
}

// envelope mirrors models.APIResponse with the payload left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
		}
	}
	return env
}
