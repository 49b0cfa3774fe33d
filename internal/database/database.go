// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/reviewscope/internal/config"
	"github.com/tomtom215/reviewscope/internal/logging"
)

// DB wraps the DuckDB connection to the review store. The store is either a
// MotherDuck database ("md:" paths) or a local DuckDB file.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	reviews config.ReviewsConfig
	query   string
	args    []interface{}
}

// New opens the review store and verifies it with a ping.
// Invalid credentials or an unreachable store yield a *ConnectionError.
func New(cfg *config.DatabaseConfig, reviews *config.ReviewsConfig) (*DB, error) {
	query, args, err := reviewsQuery(reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to build reviews query: %w", err)
	}

	if !cfg.IsMotherDuck() && !isMemoryPath(cfg.Path) {
		// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", buildDSN(cfg))
	if err != nil {
		return nil, &ConnectionError{Op: "open", Err: err}
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		reviews: *reviews,
		query:   query,
		args:    args,
	}
	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, &ConnectionError{Op: "ping", Err: err}
	}

	logging.Info().
		Str("store", db.StoreName()).
		Str("table", reviews.Table).
		Msg("Connected to review store")
	return db, nil
}

// buildDSN assembles the DuckDB connection string. The MotherDuck token is
// passed as a DSN parameter and never logged.
func buildDSN(cfg *config.DatabaseConfig) string {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	params := url.Values{}
	params.Set("threads", strconv.Itoa(numThreads))
	if cfg.MaxMemory != "" {
		params.Set("max_memory", cfg.MaxMemory)
	}

	if cfg.IsMotherDuck() {
		params.Set("motherduck_token", cfg.MotherDuckToken)
	} else {
		// Local stores need no extensions. Disabling autoload prevents hangs
		// in restricted network environments.
		params.Set("autoinstall_known_extensions", "false")
		params.Set("autoload_known_extensions", "false")
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	return path + "?" + params.Encode()
}

func isMemoryPath(path string) bool {
	return path == "" || strings.HasPrefix(path, ":memory:")
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// StoreName describes the store for logs and health output without
// exposing credentials.
func (db *DB) StoreName() string {
	switch {
	case db.cfg.IsMotherDuck():
		return "motherduck"
	case isMemoryPath(db.cfg.Path):
		return "memory"
	default:
		return "duckdb"
	}
}

// ensureContext applies the configured query timeout when ctx has no deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
