// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package sentiment

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Entry is the lexicon record for one word or emoticon.
//
// An entry with zero polarity and subjectivity but an intensity other than 1
// is a modifier ("very", "slightly"): it scales the next assessed word
// instead of being assessed itself.
type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
	Intensity    float64 `yaml:"intensity"`
}

// IsModifier reports whether the entry scales the following word.
func (e Entry) IsModifier() bool {
	return e.Polarity == 0 && e.Subjectivity == 0 && e.Intensity != 1
}

// Lexicon maps normalized tokens to sentiment entries.
type Lexicon struct {
	entries   map[string]Entry
	negations map[string]struct{}
}

// lexiconFile is the on-disk YAML layout.
type lexiconFile struct {
	Negations []string         `yaml:"negations"`
	Words     map[string]Entry `yaml:"words"`
}

// ParseLexicon parses and validates a YAML lexicon.
//
//	negations: [not, never]
//	words:
//	  good: {polarity: 0.7, subjectivity: 0.6}
//	  very: {intensity: 1.3}
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words")
	}

	lex := &Lexicon{
		entries:   make(map[string]Entry, len(f.Words)),
		negations: make(map[string]struct{}, len(f.Negations)),
	}
	for word, e := range f.Words {
		key := normalize(word)
		if key == "" {
			return nil, fmt.Errorf("lexicon word %q is empty after normalization", word)
		}
		if e.Intensity == 0 {
			e.Intensity = 1
		}
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("lexicon word %q: %w", word, err)
		}
		lex.entries[key] = e
	}
	for _, n := range f.Negations {
		if key := normalize(n); key != "" {
			lex.negations[key] = struct{}{}
		}
	}
	return lex, nil
}

func validateEntry(e Entry) error {
	if e.Polarity < -1 || e.Polarity > 1 {
		return fmt.Errorf("polarity %v outside [-1, 1]", e.Polarity)
	}
	if e.Subjectivity < 0 || e.Subjectivity > 1 {
		return fmt.Errorf("subjectivity %v outside [0, 1]", e.Subjectivity)
	}
	if e.Intensity <= 0 || e.Intensity > 3 {
		return fmt.Errorf("intensity %v outside (0, 3]", e.Intensity)
	}
	return nil
}

// LoadLexicon reads a YAML lexicon from path.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}
	return ParseLexicon(data)
}

var defaultLexicon = sync.OnceValues(func() (*Lexicon, error) {
	return ParseLexicon(defaultLexiconYAML)
})

// DefaultLexicon returns the embedded review lexicon.
// It panics if the embedded file is invalid, which the package tests rule out.
func DefaultLexicon() *Lexicon {
	lex, err := defaultLexicon()
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	return lex
}

// Lookup returns the entry for a normalized token.
func (l *Lexicon) Lookup(token string) (Entry, bool) {
	e, ok := l.entries[token]
	return e, ok
}

// IsNegation reports whether token negates the next assessed word.
// Contractions ending in "n't" always negate.
func (l *Lexicon) IsNegation(token string) bool {
	if _, ok := l.negations[token]; ok {
		return true
	}
	return len(token) > 3 && token[len(token)-3:] == "n't"
}

// Len returns the number of words and emoticons in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}
