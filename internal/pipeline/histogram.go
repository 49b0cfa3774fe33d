// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package pipeline

import (
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

// DefaultHistogramBins is the bar count of the distribution chart.
const DefaultHistogramBins = 20

// Histogram counts sentiment values in equal-width bins spanning the mode's
// range. Values outside the range are counted in the nearest edge bin.
func Histogram(reviews []models.ScoredReview, mode sentiment.Mode, bins int) models.Histogram {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	lo, hi := mode.Range()
	width := (hi - lo) / float64(bins)

	h := models.Histogram{
		Min:  lo,
		Max:  hi,
		Bins: make([]models.HistogramBin, bins),
	}
	for i := range h.Bins {
		h.Bins[i].Lower = lo + float64(i)*width
		h.Bins[i].Upper = lo + float64(i+1)*width
	}
	h.Bins[bins-1].Upper = hi

	for _, r := range reviews {
		i := int((r.Sentiment - lo) / width)
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		h.Bins[i].Count++
	}
	return h
}
