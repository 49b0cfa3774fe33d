// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package sentiment

import (
	"github.com/tomtom215/reviewscope/internal/cache"
)

// CachedAnalyzer memoizes Analyze results by text. Review exports repeat a
// lot of short texts ("Great app", "good"), so a warm cache skips most of
// the tokenizing work on a refresh.
type CachedAnalyzer struct {
	inner TextAnalyzer
	lru   *cache.LRU[string, Sentiment]
}

// NewCachedAnalyzer wraps inner with an LRU of the given size.
// A size of 0 or less disables caching.
func NewCachedAnalyzer(inner TextAnalyzer, size int) *CachedAnalyzer {
	c := &CachedAnalyzer{inner: inner}
	if size > 0 {
		c.lru = cache.NewLRU[string, Sentiment](size, 0)
	}
	return c
}

// Analyze implements TextAnalyzer.
func (c *CachedAnalyzer) Analyze(text string) Sentiment {
	if c.lru == nil {
		return c.inner.Analyze(text)
	}
	return c.lru.GetOrCompute(text, func() Sentiment {
		return c.inner.Analyze(text)
	})
}

// Score implements Scorer.
func (c *CachedAnalyzer) Score(text string, m Mode) float64 {
	return c.Analyze(text).Value(m)
}

// Stats returns cache counters. All fields are zero when caching is off.
func (c *CachedAnalyzer) Stats() cache.Stats {
	if c.lru == nil {
		return cache.Stats{}
	}
	return c.lru.Stats()
}
