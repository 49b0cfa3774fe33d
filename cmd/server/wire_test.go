// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/reviewscope/internal/config"
	"github.com/tomtom215/reviewscope/internal/database"
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

type emptySource struct{}

func (emptySource) FetchReviews(context.Context) ([]models.RawReview, error) {
	return nil, nil
}

func TestBuildScorer(t *testing.T) {
	t.Run("built-in lexicon", func(t *testing.T) {
		scorer, err := buildScorer(&config.SentimentConfig{CacheSize: 16})
		if err != nil {
			t.Fatalf("buildScorer: %v", err)
		}
		if got := scorer.Score("I love this app", sentiment.ModePolarity); got <= 0 {
			t.Errorf("expected positive polarity, got %v", got)
		}
		scorer.Score("I love this app", sentiment.ModePolarity)
		if stats := scorer.Stats(); stats.Hits != 1 || stats.Misses != 1 {
			t.Errorf("expected 1 hit and 1 miss, got %+v", stats)
		}
	})

	t.Run("custom lexicon", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		data := []byte("negations: [not]\nwords:\n  meh: {polarity: -0.25, subjectivity: 0.5}\n")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("write lexicon: %v", err)
		}
		scorer, err := buildScorer(&config.SentimentConfig{LexiconPath: path})
		if err != nil {
			t.Fatalf("buildScorer: %v", err)
		}
		if got := scorer.Score("meh", sentiment.ModePolarity); got != -0.25 {
			t.Errorf("expected -0.25, got %v", got)
		}
		if got := scorer.Score("love", sentiment.ModePolarity); got != 0 {
			t.Errorf("word outside custom lexicon scored %v", got)
		}
	})

	t.Run("missing lexicon file", func(t *testing.T) {
		_, err := buildScorer(&config.SentimentConfig{LexiconPath: filepath.Join(t.TempDir(), "missing.yaml")})
		if err == nil {
			t.Fatal("expected error for missing lexicon")
		}
	})
}

func TestBuildSource(t *testing.T) {
	store := emptySource{}

	t.Run("breaker disabled", func(t *testing.T) {
		source, breaker := buildSource(store, &config.DatabaseConfig{})
		if _, ok := source.(emptySource); !ok {
			t.Errorf("expected the store itself, got %T", source)
		}
		if breaker != nil {
			t.Errorf("expected nil breaker status, got %v", breaker)
		}
	})

	t.Run("breaker enabled", func(t *testing.T) {
		source, breaker := buildSource(store, &config.DatabaseConfig{BreakerEnabled: true, BreakerTimeout: time.Second})
		if _, ok := source.(*database.BreakerSource); !ok {
			t.Fatalf("expected *database.BreakerSource, got %T", source)
		}
		if breaker == nil || breaker.State() != "closed" {
			t.Errorf("expected closed breaker, got %v", breaker)
		}
	})
}

func TestNewHTTPServer(t *testing.T) {
	handler := http.NotFoundHandler()
	server := newHTTPServer(&config.ServerConfig{Host: "127.0.0.1", Port: 8501, Timeout: 30 * time.Second}, handler)

	if server.Addr != "127.0.0.1:8501" {
		t.Errorf("Addr = %q, want 127.0.0.1:8501", server.Addr)
	}
	if server.ReadTimeout != 30*time.Second || server.WriteTimeout != 30*time.Second {
		t.Errorf("timeouts not applied: read %v write %v", server.ReadTimeout, server.WriteTimeout)
	}
	if server.ReadHeaderTimeout == 0 {
		t.Error("ReadHeaderTimeout should be set")
	}
}
