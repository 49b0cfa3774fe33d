// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tomtom215/reviewscope/internal/config"
	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/metrics"
	"github.com/tomtom215/reviewscope/internal/models"
)

// ReviewSource returns the full set of reviews with non-empty content.
// There is no pagination: one call returns every matching row.
type ReviewSource interface {
	FetchReviews(ctx context.Context) ([]models.RawReview, error)
}

// FetchReviews runs the review query. Rows with NULL or empty content are
// filtered by the store. A NULL score reads as 0 and a NULL extraction time
// as the zero time.
func (db *DB) FetchReviews(ctx context.Context) ([]models.RawReview, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	reviews, err := queryAndScan(ctx, db.conn, db.query, db.args, scanReview)
	metrics.RecordDBQuery("SELECT", db.reviews.Table, time.Since(start), err)
	if err != nil {
		logging.Error().Err(err).Str("table", db.reviews.Table).Msg("Failed to fetch reviews")
		return nil, classifyQueryError("fetch reviews", db.query, err)
	}

	logging.Debug().
		Int("rows", len(reviews)).
		Dur("duration", time.Since(start)).
		Msg("Fetched reviews")
	return reviews, nil
}

// reviewsQuery builds the review SELECT. Identifiers come from validated
// config and are double-quoted; the empty-string comparison is a bound
// parameter.
func reviewsQuery(cfg *config.ReviewsConfig) (string, []interface{}, error) {
	content := quoteIdent(cfg.ContentColumn)
	return sq.Select(
		fmt.Sprintf("CAST(%s AS VARCHAR)", quoteIdent(cfg.IDColumn)),
		content,
		fmt.Sprintf("CAST(%s AS BIGINT)", quoteIdent(cfg.ScoreColumn)),
		quoteIdent(cfg.ExtractedAtColumn),
	).
		From(quoteIdent(cfg.Table)).
		Where(sq.And{
			sq.NotEq{content: nil},
			sq.NotEq{content: ""},
		}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// quoteIdent double-quotes each dot-separated part of an identifier, so
// "main.spotify_reviews" becomes "main"."spotify_reviews".
func quoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}

func scanReview(rows *sql.Rows) (models.RawReview, error) {
	var (
		r           models.RawReview
		id          sql.NullString
		score       sql.NullInt64
		extractedAt sql.NullTime
	)
	if err := rows.Scan(&id, &r.Content, &score, &extractedAt); err != nil {
		return r, fmt.Errorf("failed to scan review: %w", err)
	}
	r.ID = id.String
	r.Score = int(score.Int64)
	if extractedAt.Valid {
		r.ExtractedAt = extractedAt.Time.UTC()
	}
	return r, nil
}

// scanFunc is a function that scans a single row into a result type
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan function
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0, 256)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
