// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

// fixedScorer returns preset scores by text.
type fixedScorer map[string]float64

func (f fixedScorer) Score(text string, _ sentiment.Mode) float64 {
	return f[text]
}

func raw(content string, score int) models.RawReview {
	return models.RawReview{ID: content, Content: content, Score: score}
}

func TestRunLoveAndWorst(t *testing.T) {
	p := New(sentiment.NewAnalyzer(nil))
	res := p.Run([]models.RawReview{
		raw("I love this app", 5),
		raw("Worst app ever", 1),
	}, sentiment.ModePolarity)

	if len(res.Reviews) != 2 {
		t.Fatalf("len(Reviews) = %d, want 2", len(res.Reviews))
	}
	first, second := res.Reviews[0], res.Reviews[1]
	if first.Sentiment <= 0 || first.Category != models.CategoryPositive {
		t.Errorf("first = %v (%v), want positive sentiment and Positive", first.Sentiment, first.Category)
	}
	if second.Sentiment >= 0 || second.Category != models.CategoryNegative {
		t.Errorf("second = %v (%v), want negative sentiment and Negative", second.Sentiment, second.Category)
	}

	agg := res.Aggregates
	if agg.PositiveCount != 1 || agg.NegativeCount != 1 {
		t.Errorf("counts = +%d/-%d, want +1/-1", agg.PositiveCount, agg.NegativeCount)
	}
	mean, ok := agg.Mean()
	if !ok {
		t.Fatal("Mean() ok = false")
	}
	if !(mean > second.Sentiment && mean < first.Sentiment) {
		t.Errorf("mean %v not strictly between %v and %v", mean, second.Sentiment, first.Sentiment)
	}
	if *agg.PositivePct != 50 || *agg.NegativePct != 50 {
		t.Errorf("pcts = %v/%v, want 50/50", *agg.PositivePct, *agg.NegativePct)
	}
	if agg.ModeEdgeMismatch {
		t.Error("ModeEdgeMismatch set for polarity mode")
	}
}

func TestRunEmpty(t *testing.T) {
	p := New(sentiment.NewAnalyzer(nil))
	res := p.Run(nil, sentiment.ModePolarity)

	agg := res.Aggregates
	if agg.HasData || agg.Total != 0 {
		t.Errorf("HasData = %v, Total = %d; want false, 0", agg.HasData, agg.Total)
	}
	if agg.MeanSentiment != nil || agg.PositivePct != nil || agg.NegativePct != nil {
		t.Error("expected nil ratios for empty input")
	}
	if len(agg.ByRating) != 0 {
		t.Errorf("ByRating = %v, want empty", agg.ByRating)
	}
	if samples := Sample(res.Reviews, 5, nil); len(samples) != 0 {
		t.Errorf("Sample() = %v, want no categories", samples)
	}
}

func TestRunPreservesOrderAndLength(t *testing.T) {
	scorer := fixedScorer{"a": 0.9, "b": -0.9, "c": 0, "d": 0.2}
	input := []models.RawReview{raw("d", 3), raw("a", 5), raw("c", 2), raw("b", 1), raw("a", 4)}

	res := New(scorer).Run(input, sentiment.ModePolarity)
	if len(res.Reviews) != len(input) {
		t.Fatalf("len = %d, want %d", len(res.Reviews), len(input))
	}
	for i := range input {
		if res.Reviews[i].RawReview != input[i] {
			t.Errorf("Reviews[%d] = %+v, want %+v", i, res.Reviews[i].RawReview, input[i])
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	p := New(sentiment.NewAnalyzer(nil))
	input := []models.RawReview{
		raw("Great music, terrible ads", 3),
		raw("not bad at all", 4),
		raw("crashes constantly :(", 1),
	}
	for _, mode := range sentiment.Modes {
		a := p.Run(input, mode)
		b := p.Run(input, mode)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("mode %v: runs differ\n%+v\n%+v", mode, a, b)
		}
	}
}

func TestAggregateCountsAndByRating(t *testing.T) {
	scorer := fixedScorer{"pos": 0.6, "neg": -0.6, "zero": 0, "mild": 0.2}
	input := []models.RawReview{
		raw("pos", 5), raw("pos", 5), raw("mild", 4),
		raw("zero", 3), raw("neg", 1), raw("zero", 1),
	}
	agg := New(scorer).Run(input, sentiment.ModePolarity).Aggregates

	if agg.PositiveCount != 3 || agg.NegativeCount != 1 {
		t.Errorf("counts = +%d/-%d, want +3/-1", agg.PositiveCount, agg.NegativeCount)
	}
	if agg.PositiveCount+agg.NegativeCount > agg.Total {
		t.Error("positive + negative exceeds total")
	}

	wantRatings := []models.RatingMean{
		{Score: 1, Count: 2, MeanSentiment: -0.3},
		{Score: 3, Count: 1, MeanSentiment: 0},
		{Score: 4, Count: 1, MeanSentiment: 0.2},
		{Score: 5, Count: 2, MeanSentiment: 0.6},
	}
	if len(agg.ByRating) != len(wantRatings) {
		t.Fatalf("ByRating = %+v, want %+v", agg.ByRating, wantRatings)
	}
	groupTotal := 0
	for i, want := range wantRatings {
		got := agg.ByRating[i]
		if got.Score != want.Score || got.Count != want.Count || math.Abs(got.MeanSentiment-want.MeanSentiment) > 1e-9 {
			t.Errorf("ByRating[%d] = %+v, want %+v", i, got, want)
		}
		groupTotal += got.Count
	}
	if groupTotal != agg.Total {
		t.Errorf("rating groups cover %d reviews, want %d", groupTotal, agg.Total)
	}

	wantCats := []models.CategoryCount{
		{Category: models.CategoryNegative, Count: 1},
		{Category: models.CategoryNeutral, Count: 3},
		{Category: models.CategoryPositive, Count: 2},
	}
	if !reflect.DeepEqual(agg.Categories, wantCats) {
		t.Errorf("Categories = %+v, want %+v", agg.Categories, wantCats)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		v    float64
		want models.Category
	}{
		{-2, models.CategoryNegative},
		{-1, models.CategoryNegative},
		{-0.5, models.CategoryNegative},
		{-0.49, models.CategoryNeutral},
		{0, models.CategoryNeutral},
		{0.5, models.CategoryNeutral},
		{0.51, models.CategoryPositive},
		{1, models.CategoryPositive},
		{1.5, models.CategoryPositive},
	}
	for _, tt := range tests {
		if got := Categorize(tt.v); got != tt.want {
			t.Errorf("Categorize(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSubjectivityModeFlagsEdgeMismatch(t *testing.T) {
	p := New(sentiment.NewAnalyzer(nil))
	res := p.Run([]models.RawReview{
		raw("Worst app ever", 1),
		raw("the app opens", 3),
	}, sentiment.ModeSubjectivity)

	if !res.Aggregates.ModeEdgeMismatch {
		t.Error("ModeEdgeMismatch = false for subjectivity")
	}
	if Notice(res.Aggregates) != EdgeMismatchNotice {
		t.Error("Notice() did not return the edge mismatch notice")
	}
	for _, r := range res.Reviews {
		if r.Category == models.CategoryNegative {
			t.Errorf("subjectivity review %q categorized Negative", r.Content)
		}
	}
	if Notice(New(fixedScorer{}).Run(nil, sentiment.ModePolarity).Aggregates) != "" {
		t.Error("Notice() non-empty for polarity")
	}
}

func TestFilter(t *testing.T) {
	scorer := fixedScorer{"pos": 0.9, "neg": -0.9, "mid": 0.1}
	res := New(scorer).Run([]models.RawReview{
		raw("pos", 5), raw("neg", 1), raw("mid", 3), raw("pos", 4),
	}, sentiment.ModePolarity)

	got := Filter(res.Reviews, models.CategoryPositive)
	if len(got) != 2 || got[0].Score != 5 || got[1].Score != 4 {
		t.Errorf("Filter(Positive) = %+v", got)
	}
	if got := Filter(res.Reviews[:0], models.CategoryNegative); len(got) != 0 {
		t.Errorf("Filter(empty) = %+v", got)
	}
}
