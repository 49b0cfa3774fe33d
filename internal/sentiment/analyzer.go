// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package sentiment

import (
	"fmt"
)

// negationFactor is applied to the polarity of a negated word, so
// "not good" is mildly negative rather than the mirror of "good".
const negationFactor = -0.5

// Sentiment is the pair of scores produced for one text.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Value returns the score selected by mode.
func (s Sentiment) Value(m Mode) float64 {
	if m == ModeSubjectivity {
		return s.Subjectivity
	}
	return s.Polarity
}

// Scorer maps a text to a single score for the given mode.
type Scorer interface {
	Score(text string, m Mode) float64
}

// TextAnalyzer computes both sentiment dimensions of a text.
type TextAnalyzer interface {
	Analyze(text string) Sentiment
}

// Analyzer is a lexicon-based sentiment scorer. It is stateless after
// construction and safe for concurrent use.
type Analyzer struct {
	lex *Lexicon
}

// NewAnalyzer returns an analyzer over lex, or over the embedded default
// lexicon when lex is nil.
func NewAnalyzer(lex *Lexicon) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Analyzer{lex: lex}
}

// Lexicon returns the lexicon the analyzer scores against.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lex
}

// Score implements Scorer.
func (a *Analyzer) Score(text string, m Mode) float64 {
	return a.Analyze(text).Value(m)
}

// Analyze scores text as the mean of its assessed words.
//
// A negation flips and halves the polarity of the next assessed word.
// Modifiers multiply both scores of the next assessed word. Both reset at
// sentence punctuation. Text with no assessed words scores (0, 0).
func (a *Analyzer) Analyze(text string) Sentiment {
	tokens := tokenize(text, a.lex)
	if len(tokens) == 0 {
		return Sentiment{}
	}

	var (
		sumP, sumS float64
		n          int
		negate     bool
		modifier   = 1.0
	)
	for _, tok := range tokens {
		if tok == boundary {
			negate = false
			modifier = 1
			continue
		}
		if a.lex.IsNegation(tok) {
			negate = true
			continue
		}
		e, ok := a.lex.Lookup(tok)
		if !ok {
			// Unknown words break a modifier chain but not a negation:
			// "not the best" still negates "best".
			modifier = 1
			continue
		}
		if e.IsModifier() {
			modifier *= e.Intensity
			continue
		}

		p := clamp(e.Polarity*modifier, -1, 1)
		s := clamp(e.Subjectivity*modifier, 0, 1)
		if negate {
			p *= negationFactor
			negate = false
		}
		modifier = 1

		sumP += p
		sumS += s
		n++
	}

	if n == 0 {
		return Sentiment{}
	}
	return Sentiment{
		Polarity:     clamp(sumP/float64(n), -1, 1),
		Subjectivity: clamp(sumS/float64(n), 0, 1),
	}
}

// ScoreValue scores an arbitrary value by its string form. Nil scores as
// the empty string; byte slices are read as text.
func ScoreValue(s Scorer, v any, m Mode) float64 {
	var text string
	switch t := v.(type) {
	case nil:
	case string:
		text = t
	case []byte:
		text = string(t)
	default:
		text = fmt.Sprint(t)
	}
	return s.Score(text, m)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
