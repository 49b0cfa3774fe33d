// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/reviewscope/internal/logging"
)

// demoReview is one seeded row. A nil content seeds a NULL.
type demoReview struct {
	content *string
	score   int
}

func strPtr(s string) *string { return &s }

// demoReviews mirrors the shape of a real app store export: mostly short
// texts, every star rating present, plus NULL and empty rows the review
// query must skip.
var demoReviews = []demoReview{
	{strPtr("I love this app"), 5},
	{strPtr("Worst app ever"), 1},
	{strPtr("Great music selection and the playlists are amazing"), 5},
	{strPtr("Really good app, I use it every day"), 5},
	{strPtr("Perfect for my commute :)"), 5},
	{strPtr("Best streaming app, highly recommend"), 5},
	{strPtr("Awesome! The discover weekly is fantastic"), 5},
	{strPtr("Love the new design, very clean and easy to use"), 4},
	{strPtr("Good app but too many ads"), 4},
	{strPtr("Nice features, sometimes slow to load"), 4},
	{strPtr("Pretty good overall. Shuffle could be better"), 4},
	{strPtr("It's okay"), 3},
	{strPtr("Works fine most of the time"), 3},
	{strPtr("Decent app, nothing special"), 3},
	{strPtr("The app opens and plays music"), 3},
	{strPtr("Not bad, not great"), 3},
	{strPtr("Too many ads, it's annoying"), 2},
	{strPtr("Keeps crashing after the last update"), 2},
	{strPtr("Premium is too expensive for what you get"), 2},
	{strPtr("Offline mode is broken. Songs disappear randomly"), 2},
	{strPtr("Very disappointed with the new shuffle"), 2},
	{strPtr("Terrible update, everything is slow and buggy"), 1},
	{strPtr("Horrible customer service"), 1},
	{strPtr("App crashes constantly :("), 1},
	{strPtr("I hate the new layout"), 1},
	{strPtr("Absolutely useless since the update"), 1},
	{strPtr("Don't like the forced podcasts"), 2},
	{strPtr("Not good. Lyrics are missing on most songs"), 2},
	{strPtr("Great"), 5},
	{strPtr("good"), 4},
	{strPtr("\u2764\uFE0F\u2764\uFE0F\u2764\uFE0F"), 5},
	{strPtr("\U0001F44E"), 1},
	{nil, 3},
	{strPtr(""), 4},
}

// SeedDemoData creates the configured review table if needed and fills it
// with demo reviews. A table that already has rows is left untouched.
// Used for local demos and tests; config validation refuses it for
// MotherDuck stores.
func (db *DB) SeedDemoData(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	r := db.reviews
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s VARCHAR, %s VARCHAR, %s INTEGER, %s TIMESTAMP)`,
		quoteIdent(r.Table), quoteIdent(r.IDColumn), quoteIdent(r.ContentColumn),
		quoteIdent(r.ScoreColumn), quoteIdent(r.ExtractedAtColumn))
	if _, err := db.conn.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create review table: %w", err)
	}

	var existing int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(r.Table))
	if err := db.conn.QueryRowContext(ctx, countQuery).Scan(&existing); err != nil {
		return fmt.Errorf("failed to count reviews: %w", err)
	}
	if existing > 0 {
		logging.Info().Int("rows", existing).Msg("Review table already populated, skipping demo seed")
		return nil
	}

	logging.Info().Int("rows", len(demoReviews)).Msg("Seeding review table with demo data")

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insert := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)",
		quoteIdent(r.Table), quoteIdent(r.IDColumn), quoteIdent(r.ContentColumn),
		quoteIdent(r.ScoreColumn), quoteIdent(r.ExtractedAtColumn))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer closeQuietly(stmt)

	base := time.Now().UTC().Truncate(time.Hour)
	for i, d := range demoReviews {
		var content sql.NullString
		if d.content != nil {
			content = sql.NullString{String: *d.content, Valid: true}
		}
		extractedAt := base.Add(-time.Duration(i) * time.Hour)
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), content, d.score, extractedAt); err != nil {
			return fmt.Errorf("failed to insert demo review %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit demo seed: %w", err)
	}
	return nil
}

// DemoReviewCount is the number of seeded rows the review query returns.
func DemoReviewCount() int {
	n := 0
	for _, d := range demoReviews {
		if d.content != nil && *d.content != "" {
			n++
		}
	}
	return n
}
