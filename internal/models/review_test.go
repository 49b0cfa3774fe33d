// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryNegative, "Negative"},
		{CategoryNeutral, "Neutral"},
		{CategoryPositive, "Positive"},
		{Category(7), "Category(7)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", int(tt.c), got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"negative", CategoryNegative, false},
		{"Neutral", CategoryNeutral, false},
		{" POSITIVE ", CategoryPositive, false},
		{"mixed", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScoredReviewJSON(t *testing.T) {
	r := ScoredReview{
		RawReview: RawReview{
			ID:          "abc",
			Content:     "I love this app",
			Score:       5,
			ExtractedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		Sentiment: 0.5,
		Category:  CategoryNeutral,
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{`"id":"abc"`, `"score":5`, `"sentiment":0.5`, `"category":"Neutral"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}

	var decoded ScoredReview
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.ID != r.ID || decoded.Score != r.Score || decoded.Category != r.Category || decoded.Sentiment != r.Sentiment {
		t.Errorf("decoded = %+v, want %+v", decoded, r)
	}
	if !decoded.ExtractedAt.Equal(r.ExtractedAt) {
		t.Errorf("decoded ExtractedAt = %v, want %v", decoded.ExtractedAt, r.ExtractedAt)
	}
}

func TestCategoryMarshalInvalid(t *testing.T) {
	if _, err := Category(-1).MarshalText(); err == nil {
		t.Error("expected error marshaling an invalid category")
	}
}

func TestAggregatesNoDataSerializesNull(t *testing.T) {
	agg := Aggregates{ByRating: []RatingMean{}, Categories: []CategoryCount{}}

	if _, ok := agg.Mean(); ok {
		t.Error("Mean() ok = true for empty aggregates")
	}

	data, err := json.Marshal(agg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{`"has_data":false`, `"mean_sentiment":null`, `"positive_pct":null`, `"negative_pct":null`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("NaN leaked into JSON: %s", out)
	}
}
