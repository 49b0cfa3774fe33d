// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

// Package cache provides a generic, thread-safe LRU cache.
//
// Reviewscope uses it to memoize sentiment analysis per review text: the same
// review is scored on every dashboard render, and scoring is a pure function
// of the text, so cached and uncached results are identical.
//
//	c := cache.NewLRU[string, int](1000, 0)
//	n := c.GetOrCompute("key", func() int { return expensive() })
package cache
