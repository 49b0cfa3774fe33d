// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package models

import (
	"fmt"
	"strings"
	"time"
)

// RawReview is one review row as fetched from the review store.
// Content is never empty: the store query filters out null and empty texts.
type RawReview struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Score       int       `json:"score"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// ScoredReview is a RawReview with the sentiment computed for one scoring
// mode and the category derived from it. Values are built once by the
// pipeline and never modified afterwards.
type ScoredReview struct {
	RawReview
	Sentiment float64  `json:"sentiment"`
	Category  Category `json:"category"`
}

// Category is the sentiment bucket of a scored review.
type Category int

const (
	// CategoryNegative holds sentiment in (-inf, -0.5].
	CategoryNegative Category = iota
	// CategoryNeutral holds sentiment in (-0.5, 0.5].
	CategoryNeutral
	// CategoryPositive holds sentiment in (0.5, +inf).
	CategoryPositive
)

// Categories lists every category in display order.
var Categories = []Category{CategoryNegative, CategoryNeutral, CategoryPositive}

var categoryNames = [...]string{"Negative", "Neutral", "Positive"}

// String returns the display label of the category.
func (c Category) String() string {
	if c < CategoryNegative || c > CategoryPositive {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= CategoryNegative && c <= CategoryPositive
}

// MarshalText encodes the category as its label.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category label (case-insensitive).
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory parses a category label such as "negative" or "Positive".
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q (want negative, neutral or positive)", s)
}
