// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

// Package logging provides the zerolog-based structured logger used across Reviewscope.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    Timestamp: true,
//	})
//
//	logging.Info().Str("table", "spotify_reviews").Msg("Review source ready")
//	logging.Err(err).Msg("Fetch failed")
//
//	// With request and correlation IDs
//	logging.Ctx(ctx).Debug().Int("total", n).Msg("Pipeline finished")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Credentials
//
// The MotherDuck token must never reach the logs in clear text. Use
// SanitizeToken or SanitizeDSN before logging anything that may carry it.
//
// # Suture Integration
//
// NewSlogLogger returns an *slog.Logger writing through zerolog, which is
// what sutureslog expects for supervisor event hooks.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
