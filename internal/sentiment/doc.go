// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package sentiment scores free text on two dimensions.

Polarity ranges from -1.0 (very negative) to 1.0 (very positive).
Subjectivity ranges from 0.0 (factual) to 1.0 (opinion). Scores come from a
word lexicon: each known word carries a polarity and subjectivity, and a
text scores the mean over its assessed words.

Scoring rules:
  - Text is NFKC normalized and lowercased before tokenizing
  - Modifiers ("very", "slightly") scale the next assessed word
  - Negations ("not", "never", "don't") flip and halve the next polarity
  - Sentence punctuation ends a pending negation or modifier
  - Text with no known words scores 0.0 on both dimensions

The embedded lexicon lives in lexicon.yaml. A replacement can be loaded with
LoadLexicon and must use the same layout.

Usage:

	a := sentiment.NewAnalyzer(nil)
	s := a.Analyze("I love this app")
	fmt.Println(s.Polarity) // 0.6

	scorer := sentiment.NewCachedAnalyzer(a, 10000)
	p := scorer.Score("Worst app ever", sentiment.ModePolarity) // -1.0

Thread Safety:

Analyzer and CachedAnalyzer are safe for concurrent use.
*/
package sentiment
