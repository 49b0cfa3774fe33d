// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package sentiment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// boundary is the token emitted for sentence punctuation. It ends the scope
// of pending negations and modifiers.
const boundary = "."

// apostrophes maps typographic apostrophes to ASCII so "don’t" and "don't"
// normalize to the same token.
var apostrophes = strings.NewReplacer("\u2019", "'", "\u2018", "'", "\u02bc", "'", "`", "'")

// normalize applies NFKC, apostrophe folding and Unicode lowercasing.
// cases.Caser is stateful, so one is created per call.
func normalize(s string) string {
	s = norm.NFKC.String(s)
	s = apostrophes.Replace(s)
	s = cases.Lower(language.Und).String(s)
	return strings.TrimSpace(s)
}

// trailingPunct is the punctuation that may follow an emoticon in a field
// (":).", "<3!!").
const trailingPunct = ".,!?;"

// tokenize splits normalized text into word, emoticon, emoji and boundary
// tokens. Whitespace-separated fields that are lexicon emoticons (":)",
// "<3"), optionally followed by sentence punctuation, are kept whole;
// everything else is split into letter/digit runs with inner apostrophes
// kept ("don't", "app's").
func tokenize(text string, lex *Lexicon) []string {
	text = normalize(text)
	if text == "" {
		return nil
	}

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields)+4)
	for _, field := range fields {
		if isEmoticon(field, lex) {
			tokens = append(tokens, field)
			continue
		}
		if core := strings.TrimRight(field, trailingPunct); core != field && isEmoticon(core, lex) {
			tokens = append(tokens, core)
			if strings.ContainsAny(field[len(core):], ".!?;") {
				tokens = append(tokens, boundary)
			}
			continue
		}
		tokens = splitField(field, tokens)
	}
	return tokens
}

// isEmoticon reports whether field is a non-word lexicon entry.
func isEmoticon(field string, lex *Lexicon) bool {
	if field == "" || isWordish(field) {
		return false
	}
	_, ok := lex.Lookup(field)
	return ok
}

// splitField appends the tokens of one whitespace-free field to dst.
func splitField(field string, dst []string) []string {
	runes := []rune(field)
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		word := strings.Trim(string(runes[start:end]), "'")
		if word != "" {
			dst = append(dst, word)
		}
		start = -1
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) && !isVariationSelector(r):
			if start < 0 {
				start = i
			}
		case r == '\'':
			// Inner apostrophes belong to the word; leading ones are trimmed on flush.
			if start < 0 {
				start = i
			}
		case isVariationSelector(r):
			// Emoji presentation selectors carry no meaning.
		case r == '.' || r == '!' || r == '?' || r == ';':
			flush(i)
			if len(dst) > 0 && dst[len(dst)-1] != boundary {
				dst = append(dst, boundary)
			}
		case unicode.Is(unicode.So, r):
			flush(i)
			dst = append(dst, string(r))
		default:
			flush(i)
		}
	}
	flush(len(runes))
	return dst
}

// isWordish reports whether s consists only of letters, so a lexicon word
// that is also an emoticon-free field goes through the regular splitter.
func isWordish(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '\'' {
			return false
		}
	}
	return true
}

func isVariationSelector(r rune) bool {
	return r == '\uFE0E' || r == '\uFE0F'
}
