// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

// Package dashboard orchestrates one dashboard render: a single fetch from
// the review store, a single pipeline run, then sampling and the
// distribution histogram. Nothing is cached between renders.
package dashboard
