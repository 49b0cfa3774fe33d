// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package pipeline

import (
	"sort"

	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

// Category edges. They were authored for the polarity range and are applied
// unchanged to subjectivity scores.
const (
	NegativeEdge = -0.5
	PositiveEdge = 0.5
)

// EdgeMismatchNotice explains the subjectivity categorization to readers.
const EdgeMismatchNotice = "Category edges (-1, -0.5, 0.5, 1) were designed for polarity. " +
	"Subjectivity scores range from 0 to 1, so reviews are only ever categorized as Neutral or Positive in this mode."

// Result is the output of one pipeline run.
type Result struct {
	Mode       sentiment.Mode
	Reviews    []models.ScoredReview
	Aggregates models.Aggregates
}

// Pipeline scores, categorizes and aggregates a review set. It holds no
// state between runs and is safe for concurrent use if its scorer is.
type Pipeline struct {
	scorer sentiment.Scorer
}

// New creates a pipeline that scores with scorer.
func New(scorer sentiment.Scorer) *Pipeline {
	return &Pipeline{scorer: scorer}
}

// Run scores every review in input order and computes the aggregates.
// The input slice is not modified.
func (p *Pipeline) Run(reviews []models.RawReview, mode sentiment.Mode) Result {
	scored := make([]models.ScoredReview, len(reviews))
	for i, r := range reviews {
		v := p.scorer.Score(r.Content, mode)
		scored[i] = models.ScoredReview{
			RawReview: r,
			Sentiment: v,
			Category:  Categorize(v),
		}
	}
	return Result{
		Mode:       mode,
		Reviews:    scored,
		Aggregates: Aggregate(scored, mode),
	}
}

// Categorize buckets a sentiment value. The buckets are right-closed:
// (-inf, -0.5] Negative, (-0.5, 0.5] Neutral, (0.5, +inf) Positive.
// Values outside [-1, 1] fall into the nearest outer bucket.
func Categorize(v float64) models.Category {
	switch {
	case v <= NegativeEdge:
		return models.CategoryNegative
	case v <= PositiveEdge:
		return models.CategoryNeutral
	default:
		return models.CategoryPositive
	}
}

// Aggregate computes summary statistics over scored reviews. An empty set
// yields HasData false and nil ratios.
func Aggregate(scored []models.ScoredReview, mode sentiment.Mode) models.Aggregates {
	agg := models.Aggregates{
		Total:            len(scored),
		HasData:          len(scored) > 0,
		ByRating:         []models.RatingMean{},
		Categories:       make([]models.CategoryCount, len(models.Categories)),
		ModeEdgeMismatch: mode == sentiment.ModeSubjectivity,
	}
	for i, c := range models.Categories {
		agg.Categories[i].Category = c
	}
	if !agg.HasData {
		return agg
	}

	type group struct {
		sum   float64
		count int
	}
	groups := make(map[int]*group)

	var sum float64
	for _, r := range scored {
		sum += r.Sentiment
		switch {
		case r.Sentiment > 0:
			agg.PositiveCount++
		case r.Sentiment < 0:
			agg.NegativeCount++
		}
		agg.Categories[r.Category].Count++

		g, ok := groups[r.Score]
		if !ok {
			g = &group{}
			groups[r.Score] = g
		}
		g.sum += r.Sentiment
		g.count++
	}

	total := float64(agg.Total)
	mean := sum / total
	posPct := float64(agg.PositiveCount) / total * 100
	negPct := float64(agg.NegativeCount) / total * 100
	agg.MeanSentiment = &mean
	agg.PositivePct = &posPct
	agg.NegativePct = &negPct

	for score, g := range groups {
		agg.ByRating = append(agg.ByRating, models.RatingMean{
			Score:         score,
			Count:         g.count,
			MeanSentiment: g.sum / float64(g.count),
		})
	}
	sort.Slice(agg.ByRating, func(i, j int) bool {
		return agg.ByRating[i].Score < agg.ByRating[j].Score
	})
	return agg
}

// Notice returns the reader-facing caveat for a run, or "" when none applies.
func Notice(agg models.Aggregates) string {
	if agg.ModeEdgeMismatch {
		return EdgeMismatchNotice
	}
	return ""
}

// Filter returns the reviews in category, preserving order.
func Filter(reviews []models.ScoredReview, category models.Category) []models.ScoredReview {
	out := make([]models.ScoredReview, 0, len(reviews)/len(models.Categories)+1)
	for _, r := range reviews {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
