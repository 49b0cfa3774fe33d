// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/reviewscope/internal/database"
	"github.com/tomtom215/reviewscope/internal/models"
)

func TestSentimentSummary(t *testing.T) {
	srv := newTestServer(t, &stubSource{reviews: threeReviews()})

	rec := doGet(t, srv, "/api/v1/sentiment/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}

	var got models.SummaryResponse
	env := decodeEnvelope(t, rec, &got)
	if env.Status != "success" {
		t.Errorf("status = %q, want success", env.Status)
	}
	if got.Mode != "polarity" {
		t.Errorf("mode = %q, want polarity", got.Mode)
	}

	agg := got.Aggregates
	if agg.Total != 3 || !agg.HasData {
		t.Fatalf("total/has_data = %d/%v, want 3/true", agg.Total, agg.HasData)
	}
	wantMean := (0.6 - 1.0 + 0.42) / 3
	if agg.MeanSentiment == nil || math.Abs(*agg.MeanSentiment-wantMean) > 1e-9 {
		t.Errorf("mean = %v, want %v", agg.MeanSentiment, wantMean)
	}
	if agg.PositiveCount != 2 || agg.NegativeCount != 1 {
		t.Errorf("counts = +%d/-%d, want +2/-1", agg.PositiveCount, agg.NegativeCount)
	}
	if got.Notice != "" || agg.ModeEdgeMismatch {
		t.Errorf("polarity run should carry no notice, got %q", got.Notice)
	}
	if len(agg.Categories) != 3 {
		t.Fatalf("categories = %d, want 3", len(agg.Categories))
	}
	for _, c := range agg.Categories {
		if c.Count != 1 {
			t.Errorf("category %v count = %d, want 1", c.Category, c.Count)
		}
	}
}

func TestSentimentSummary_Modes(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantMode   string
		wantNotice bool
	}{
		{"", http.StatusOK, "polarity", false},
		{"?mode=polarity", http.StatusOK, "polarity", false},
		{"?mode=SUBJECTIVITY", http.StatusOK, "subjectivity", true},
		{"?mode=Subjectivity", http.StatusOK, "subjectivity", true},
		{"?mode=emotion", http.StatusBadRequest, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			srv := newTestServer(t, &stubSource{reviews: threeReviews()})
			rec := doGet(t, srv, "/api/v1/sentiment/summary"+tt.query)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var got models.SummaryResponse
			env := decodeEnvelope(t, rec, &got)
			if tt.wantStatus != http.StatusOK {
				if env.Error == nil || env.Error.Code != ErrCodeValidation {
					t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
				}
				return
			}
			if got.Mode != tt.wantMode {
				t.Errorf("mode = %q, want %q", got.Mode, tt.wantMode)
			}
			if (got.Notice != "") != tt.wantNotice {
				t.Errorf("notice = %q, want present=%v", got.Notice, tt.wantNotice)
			}
			if got.Aggregates.ModeEdgeMismatch != tt.wantNotice {
				t.Errorf("mode_edge_mismatch = %v", got.Aggregates.ModeEdgeMismatch)
			}
		})
	}
}

func TestSentimentSummary_Empty(t *testing.T) {
	srv := newTestServer(t, &stubSource{})

	rec := doGet(t, srv, "/api/v1/sentiment/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"has_data":false`, `"mean_sentiment":null`, `"positive_pct":null`, `"negative_pct":null`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
	if strings.Contains(body, "NaN") {
		t.Errorf("body contains NaN: %s", body)
	}
}

func TestSentimentEndpoints_StoreErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "connection",
			err:        &database.ConnectionError{Op: "ping", Err: errors.New("invalid token")},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrCodeServiceUnavailable,
		},
		{
			name:       "breaker open",
			err:        &database.ConnectionError{Op: "fetch reviews", Err: fmt.Errorf("%w: open", database.ErrCircuitOpen)},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrCodeServiceUnavailable,
		},
		{
			name:       "query",
			err:        &database.QueryError{Op: "fetch reviews", Query: "SELECT 1", Err: errors.New("table not found")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeDatabase,
		},
		{
			name:       "other",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeInternal,
		},
	}

	paths := []string{
		"/api/v1/sentiment/summary",
		"/api/v1/sentiment/by-rating",
		"/api/v1/sentiment/distribution",
		"/api/v1/sentiment/samples",
		"/api/v1/reviews",
		"/api/v1/dashboard",
	}

	for _, tt := range tests {
		for _, path := range paths {
			t.Run(tt.name+path, func(t *testing.T) {
				srv := newTestServer(t, &stubSource{err: tt.err})
				rec := doGet(t, srv, path)
				if rec.Code != tt.wantStatus {
					t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
				}
				env := decodeEnvelope(t, rec, nil)
				if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("envelope = %+v, want code %s", env, tt.wantCode)
				}
				if strings.Contains(rec.Body.String(), "invalid token") || strings.Contains(rec.Body.String(), "SELECT") {
					t.Errorf("store internals leaked to client: %s", rec.Body.String())
				}
			})
		}
	}
}

func TestSentimentByRating(t *testing.T) {
	srv := newTestServer(t, &stubSource{reviews: threeReviews()})

	rec := doGet(t, srv, "/api/v1/sentiment/by-rating")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got models.ByRatingResponse
	decodeEnvelope(t, rec, &got)

	wantScores := []int{1, 3, 5}
	if len(got.ByRating) != len(wantScores) {
		t.Fatalf("by_rating = %+v, want %d entries", got.ByRating, len(wantScores))
	}
	for i, s := range wantScores {
		if got.ByRating[i].Score != s {
			t.Errorf("by_rating[%d].score = %d, want %d", i, got.ByRating[i].Score, s)
		}
	}
	if got.ByRating[0].MeanSentiment != -1.0 {
		t.Errorf("score 1 mean = %v, want -1", got.ByRating[0].MeanSentiment)
	}

	t.Run("empty is an empty list", func(t *testing.T) {
		rec := doGet(t, newTestServer(t, &stubSource{}), "/api/v1/sentiment/by-rating")
		if !strings.Contains(rec.Body.String(), `"by_rating":[]`) {
			t.Errorf("body = %s, want empty by_rating list", rec.Body.String())
		}
	})
}

func TestSentimentDistribution(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantBins   int
		wantMin    float64
	}{
		{"", http.StatusOK, 20, -1},
		{"?bins=4", http.StatusOK, 4, -1},
		{"?bins=10&mode=subjectivity", http.StatusOK, 10, 0},
		{"?bins=abc", http.StatusBadRequest, 0, 0},
		{"?bins=500", http.StatusBadRequest, 0, 0},
		{"?bins=-1", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			srv := newTestServer(t, &stubSource{reviews: threeReviews()})
			rec := doGet(t, srv, "/api/v1/sentiment/distribution"+tt.query)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var got models.DistributionResponse
			decodeEnvelope(t, rec, &got)
			if len(got.Histogram.Bins) != tt.wantBins {
				t.Errorf("bins = %d, want %d", len(got.Histogram.Bins), tt.wantBins)
			}
			if got.Histogram.Min != tt.wantMin || got.Histogram.Max != 1 {
				t.Errorf("range = [%v, %v], want [%v, 1]", got.Histogram.Min, got.Histogram.Max, tt.wantMin)
			}
			total := 0
			for _, b := range got.Histogram.Bins {
				total += b.Count
			}
			if total != 3 {
				t.Errorf("histogram total = %d, want 3", total)
			}
		})
	}
}

func TestSentimentSamples(t *testing.T) {
	reviews := make([]models.RawReview, 0, 12)
	for i := 0; i < 10; i++ {
		reviews = append(reviews, review(fmt.Sprintf("p%d", i), "great", 5))
	}
	reviews = append(reviews, review("n1", "terrible", 1))

	t.Run("default size", func(t *testing.T) {
		rec := doGet(t, newTestServer(t, &stubSource{reviews: reviews}), "/api/v1/sentiment/samples")
		var got models.SamplesResponse
		decodeEnvelope(t, rec, &got)

		if len(got.Samples) != 2 {
			t.Fatalf("samples = %d groups, want 2 (neutral omitted)", len(got.Samples))
		}
		if got.Samples[0].Category != models.CategoryNegative || got.Samples[1].Category != models.CategoryPositive {
			t.Errorf("order = %v, %v", got.Samples[0].Category, got.Samples[1].Category)
		}
		if len(got.Samples[1].Reviews) != 5 || got.Samples[1].Total != 10 {
			t.Errorf("positive sample = %d of %d, want 5 of 10", len(got.Samples[1].Reviews), got.Samples[1].Total)
		}
	})

	t.Run("size parameter", func(t *testing.T) {
		rec := doGet(t, newTestServer(t, &stubSource{reviews: reviews}), "/api/v1/sentiment/samples?size=3")
		var got models.SamplesResponse
		decodeEnvelope(t, rec, &got)
		if len(got.Samples) != 2 || len(got.Samples[1].Reviews) != 3 {
			t.Errorf("samples = %+v, want 3 positive", got.Samples)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		for _, q := range []string{"?size=x", "?size=101"} {
			rec := doGet(t, newTestServer(t, &stubSource{reviews: reviews}), "/api/v1/sentiment/samples"+q)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", q, rec.Code)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		rec := doGet(t, newTestServer(t, &stubSource{}), "/api/v1/sentiment/samples")
		if !strings.Contains(rec.Body.String(), `"samples":[]`) {
			t.Errorf("body = %s, want empty samples", rec.Body.String())
		}
	})
}

func TestReviews(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantIDs     []string
		wantTotal   int
		wantHasMore bool
	}{
		{"all", "", http.StatusOK, []string{"r1", "r2", "r3"}, 3, false},
		{"category", "?category=negative", http.StatusOK, []string{"r2"}, 1, false},
		{"category case", "?category=Positive", http.StatusOK, []string{"r1"}, 1, false},
		{"page", "?limit=2", http.StatusOK, []string{"r1", "r2"}, 3, true},
		{"offset", "?limit=2&offset=2", http.StatusOK, []string{"r3"}, 3, false},
		{"past end", "?offset=10", http.StatusOK, []string{}, 3, false},
		{"bad category", "?category=mixed", http.StatusBadRequest, nil, 0, false},
		{"zero limit", "?limit=0", http.StatusBadRequest, nil, 0, false},
		{"bad offset", "?offset=-3", http.StatusBadRequest, nil, 0, false},
		{"non numeric", "?limit=ten", http.StatusBadRequest, nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &stubSource{reviews: threeReviews()})
			rec := doGet(t, srv, "/api/v1/reviews"+tt.query)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got models.ReviewsResponse
			decodeEnvelope(t, rec, &got)
			if len(got.Reviews) != len(tt.wantIDs) {
				t.Fatalf("reviews = %d, want %d", len(got.Reviews), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got.Reviews[i].ID != id {
					t.Errorf("reviews[%d].id = %q, want %q", i, got.Reviews[i].ID, id)
				}
			}
			if got.Pagination.TotalCount != tt.wantTotal || got.Pagination.HasMore != tt.wantHasMore {
				t.Errorf("pagination = %+v", got.Pagination)
			}
		})
	}
}

func TestDashboardSnapshot(t *testing.T) {
	source := &stubSource{reviews: threeReviews()}
	srv := newTestServer(t, source)

	rec := doGet(t, srv, "/api/v1/dashboard?mode=subjectivity")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got models.DashboardSnapshot
	decodeEnvelope(t, rec, &got)

	if got.Mode != "subjectivity" || got.Notice == "" {
		t.Errorf("mode/notice = %q/%q", got.Mode, got.Notice)
	}
	if got.Aggregates.Total != 3 || len(got.Histogram.Bins) == 0 || got.GeneratedAt.IsZero() {
		t.Errorf("snapshot incomplete: %+v", got)
	}
	if source.calls != 1 {
		t.Errorf("store fetched %d times, want exactly once per render", source.calls)
	}
}
