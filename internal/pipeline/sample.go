// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package pipeline

import (
	"math/rand/v2"

	"github.com/tomtom215/reviewscope/internal/models"
)

// DefaultSampleSize is the number of reviews shown per category.
const DefaultSampleSize = 5

// Sample draws up to size reviews per category without replacement.
//
// Categories are returned in display order (Negative, Neutral, Positive) and
// empty categories are omitted. A nil rng uses the global source; pass a
// seeded *rand.Rand for reproducible samples.
func Sample(reviews []models.ScoredReview, size int, rng *rand.Rand) []models.CategorySample {
	if size <= 0 {
		size = DefaultSampleSize
	}

	byCategory := make([][]int, len(models.Categories))
	for i, r := range reviews {
		byCategory[r.Category] = append(byCategory[r.Category], i)
	}

	samples := make([]models.CategorySample, 0, len(models.Categories))
	for _, c := range models.Categories {
		idx := byCategory[c]
		if len(idx) == 0 {
			continue
		}
		k := min(size, len(idx))

		// Partial Fisher-Yates: the first k positions end up a uniform
		// sample of the group.
		for i := 0; i < k; i++ {
			j := i + intN(rng, len(idx)-i)
			idx[i], idx[j] = idx[j], idx[i]
		}

		picked := make([]models.ScoredReview, k)
		for i := range picked {
			picked[i] = reviews[idx[i]]
		}
		samples = append(samples, models.CategorySample{
			Category: c,
			Total:    len(idx),
			Reviews:  picked,
		})
	}
	return samples
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
