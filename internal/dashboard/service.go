// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package dashboard

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tomtom215/reviewscope/internal/cache"
	"github.com/tomtom215/reviewscope/internal/database"
	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/metrics"
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/pipeline"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

// Config holds the presentation defaults of a render.
type Config struct {
	// SampleSize is the maximum number of reviews sampled per category.
	SampleSize int

	// HistogramBins is the bar count of the distribution chart.
	HistogramBins int

	// Rand seeds category sampling. Nil uses the global source, which is
	// the only safe choice when renders run concurrently.
	Rand *rand.Rand
}

// Request selects what one render computes. Zero values use the service
// defaults.
type Request struct {
	Mode          sentiment.Mode
	SampleSize    int
	HistogramBins int
}

// Snapshot is the result of one render. Reviews holds every scored review
// for the listing endpoint and is left out of the JSON snapshot.
type Snapshot struct {
	models.DashboardSnapshot
	Reviews []models.ScoredReview `json:"-"`
}

// statsSource is implemented by scorers that memoize results.
type statsSource interface {
	Stats() cache.Stats
}

// Service runs the fetch, score and present sequence behind every
// dashboard view. Each render is independent: one fetch, one pipeline run.
type Service struct {
	source   database.ReviewSource
	scorer   sentiment.Scorer
	pipeline *pipeline.Pipeline
	cfg      Config
	now      func() time.Time
}

// NewService creates a dashboard service reading from source and scoring
// with scorer.
func NewService(source database.ReviewSource, scorer sentiment.Scorer, cfg Config) *Service {
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = pipeline.DefaultSampleSize
	}
	if cfg.HistogramBins <= 0 {
		cfg.HistogramBins = pipeline.DefaultHistogramBins
	}
	return &Service{
		source:   source,
		scorer:   scorer,
		pipeline: pipeline.New(scorer),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Render computes a snapshot for mode with the default sample size and
// histogram bins.
func (s *Service) Render(ctx context.Context, mode sentiment.Mode) (*Snapshot, error) {
	return s.RenderRequest(ctx, Request{Mode: mode})
}

// RenderRequest fetches all reviews, runs the pipeline and builds the
// presentation data. Store errors are returned wrapped and keep their
// database error type.
func (s *Service) RenderRequest(ctx context.Context, req Request) (*Snapshot, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("invalid sentiment mode %d", int(req.Mode))
	}
	sampleSize := req.SampleSize
	if sampleSize <= 0 {
		sampleSize = s.cfg.SampleSize
	}
	bins := req.HistogramBins
	if bins <= 0 {
		bins = s.cfg.HistogramBins
	}

	fetchStart := time.Now()
	reviews, err := s.source.FetchReviews(ctx)
	fetchDur := time.Since(fetchStart)
	if err != nil {
		kind := database.ErrorKind(err)
		metrics.RecordFetch(fetchDur, 0, kind)
		logging.Ctx(ctx).Error().Err(err).Str("kind", kind).Msg("Review fetch failed")
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	metrics.RecordFetch(fetchDur, len(reviews), "")

	runStart := time.Now()
	result := s.pipeline.Run(reviews, req.Mode)
	histogram := pipeline.Histogram(result.Reviews, req.Mode, bins)
	samples := pipeline.Sample(result.Reviews, sampleSize, s.cfg.Rand)
	runDur := time.Since(runStart)

	agg := result.Aggregates
	metrics.RecordPipelineRun(req.Mode.String(), agg.HasData, runDur)
	if st, ok := s.scorer.(statsSource); ok {
		stats := st.Stats()
		metrics.UpdateScorerCache(stats.Hits, stats.Misses, stats.Size)
	}

	logger := logging.Ctx(ctx)
	logger.Debug().
		Str("mode", req.Mode.String()).
		Int("total", agg.Total).
		Bool("has_data", agg.HasData).
		Dur("fetch", fetchDur).
		Dur("pipeline", runDur).
		Msg("Pipeline run complete")
	if agg.ModeEdgeMismatch {
		logger.Warn().
			Str("mode", req.Mode.String()).
			Msg("Polarity category edges applied to subjectivity scores; no review can be Negative")
	}

	return &Snapshot{
		DashboardSnapshot: models.DashboardSnapshot{
			Mode:        req.Mode.String(),
			GeneratedAt: s.now().UTC(),
			Aggregates:  agg,
			Histogram:   histogram,
			Samples:     samples,
			Notice:      pipeline.Notice(agg),
			FetchMS:     fetchDur.Milliseconds(),
			PipelineMS:  runDur.Milliseconds(),
		},
		Reviews: result.Reviews,
	}, nil
}
