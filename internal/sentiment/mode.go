// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package sentiment

import (
	"fmt"
	"strings"
)

// Mode selects which of the two sentiment dimensions a pipeline run scores.
type Mode int

const (
	// ModePolarity scores how negative or positive a text is, in [-1, 1].
	ModePolarity Mode = iota
	// ModeSubjectivity scores how opinionated a text is, in [0, 1].
	ModeSubjectivity
)

// Modes lists every mode in display order.
var Modes = []Mode{ModePolarity, ModeSubjectivity}

// String returns the lowercase mode name used in URLs and config.
func (m Mode) String() string {
	switch m {
	case ModePolarity:
		return "polarity"
	case ModeSubjectivity:
		return "subjectivity"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModePolarity:
		return "Polarity"
	case ModeSubjectivity:
		return "Subjectivity"
	default:
		return m.String()
	}
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m == ModePolarity || m == ModeSubjectivity
}

// Range returns the closed interval of scores the mode produces.
func (m Mode) Range() (lo, hi float64) {
	if m == ModeSubjectivity {
		return 0, 1
	}
	return -1, 1
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid sentiment mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses "polarity" or "subjectivity", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "polarity":
		return ModePolarity, nil
	case "subjectivity":
		return ModeSubjectivity, nil
	default:
		return 0, fmt.Errorf("unknown sentiment mode %q (want polarity or subjectivity)", s)
	}
}
