// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package pipeline turns fetched reviews into scored reviews and summary
statistics.

A run is a pure computation: it performs no I/O and cannot fail on valid
input. Each review is scored in input order, bucketed into a category, and
the set is aggregated into mean sentiment, positive and negative shares, and
the mean sentiment per star rating.

Category edges are fixed at -0.5 and 0.5 for both modes. Under subjectivity
scoring no review can land in Negative; Aggregates.ModeEdgeMismatch flags
this so the dashboard can show EdgeMismatchNotice.

Presentation helpers work on a finished run:
  - Sample picks up to five reviews per non-empty category
  - Histogram builds the distribution chart series
  - Filter selects one category for the reviews listing
*/
package pipeline
