// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package models

// Aggregates summarizes one scored review set.
//
// When the set is empty HasData is false and every ratio field is nil, so
// the "no data" state is explicit and no NaN is ever serialized.
type Aggregates struct {
	Total   int  `json:"total"`
	HasData bool `json:"has_data"`

	MeanSentiment *float64 `json:"mean_sentiment"`

	PositiveCount int      `json:"positive_count"` // sentiment > 0
	PositivePct   *float64 `json:"positive_pct"`
	NegativeCount int      `json:"negative_count"` // sentiment < 0
	NegativePct   *float64 `json:"negative_pct"`

	// ByRating holds the mean sentiment per star rating, ascending by rating.
	ByRating []RatingMean `json:"by_rating"`

	// Categories holds the count per sentiment category in display order.
	Categories []CategoryCount `json:"categories"`

	// ModeEdgeMismatch is set when the category edges (authored for polarity)
	// were applied to subjectivity scores.
	ModeEdgeMismatch bool `json:"mode_edge_mismatch,omitempty"`
}

// Mean returns the mean sentiment and whether there was data to average.
func (a *Aggregates) Mean() (float64, bool) {
	if a.MeanSentiment == nil {
		return 0, false
	}
	return *a.MeanSentiment, true
}

// RatingMean is the mean sentiment of all reviews with one star rating.
type RatingMean struct {
	Score         int     `json:"score"`
	Count         int     `json:"count"`
	MeanSentiment float64 `json:"mean_sentiment"`
}

// CategoryCount is the number of reviews that fell into one category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// CategorySample is a random selection of reviews from one category.
// Total is the size of the whole category, Reviews at most the sample size.
type CategorySample struct {
	Category Category       `json:"category"`
	Total    int            `json:"total"`
	Reviews  []ScoredReview `json:"reviews"`
}

// HistogramBin counts sentiment values in [Lower, Upper).
// The last bin of a histogram also includes its upper edge.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram is the sentiment distribution chart series.
type Histogram struct {
	Min  float64        `json:"min"`
	Max  float64        `json:"max"`
	Bins []HistogramBin `json:"bins"`
}
