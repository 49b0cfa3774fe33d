// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"

	"github.com/tomtom215/reviewscope/internal/dashboard"
	"github.com/tomtom215/reviewscope/internal/logging"
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/sentiment"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// ratingColors are the per-rating bar colors, applied in ascending rating order.
var ratingColors = []string{"#ACEBC2", "#68DB91", "#00842F", "#1db954", "#00FF5A"}

// pageTitle is the dashboard heading.
const pageTitle = "Spotify Reviews Sentiment Analysis"

type modeOption struct {
	Value    string
	Label    string
	Selected bool
}

type metricCard struct {
	Label string
	Value string
}

type histogramBar struct {
	Range  string
	Count  int
	Height float64 // percent of the tallest bar
}

type ratingBar struct {
	Score    int
	Count    int
	Mean     string
	Color    string
	Width    float64 // percent of the full [-1, 1] magnitude
	Negative bool
}

type sampleReview struct {
	Header  string
	Content string
}

type sampleGroup struct {
	Title   string
	Total   int
	Reviews []sampleReview
}

type pageData struct {
	Title     string
	ModeLabel string
	Modes     []modeOption
	Error     string
	Notice    string
	HasData   bool
	Total     int
	Cards     []metricCard
	Histogram []histogramBar
	Ratings   []ratingBar
	Samples   []sampleGroup
	Generated string
}

// DashboardPage renders the HTML dashboard.
//
// An invalid mode falls back to the default. A store failure renders the
// page with an error banner and the matching status code.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	mode := h.defaultMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		if m, err := sentiment.ParseMode(raw); err == nil {
			mode = m
		}
	}

	data := pageData{
		Title:     pageTitle,
		ModeLabel: mode.Label(),
		Modes:     modeOptions(mode),
	}

	status := http.StatusOK
	snap, err := h.service.Render(r.Context(), mode)
	if err != nil {
		var message string
		status, _, message = storeErrorStatus(err)
		data.Error = message
	} else {
		fillPage(&data, snap, mode)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render dashboard page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write dashboard page")
	}
}

func modeOptions(selected sentiment.Mode) []modeOption {
	opts := make([]modeOption, 0, len(sentiment.Modes))
	for _, m := range sentiment.Modes {
		opts = append(opts, modeOption{Value: m.String(), Label: m.Label(), Selected: m == selected})
	}
	return opts
}

func fillPage(data *pageData, snap *dashboard.Snapshot, mode sentiment.Mode) {
	agg := snap.Aggregates
	data.Notice = snap.Notice
	data.HasData = agg.HasData
	data.Total = agg.Total
	data.Generated = snap.GeneratedAt.Format("2006-01-02 15:04:05 MST")

	mean := "n/a"
	if v, ok := agg.Mean(); ok {
		mean = fmt.Sprintf("%.2f", v)
	}
	data.Cards = []metricCard{
		{Label: "Average " + mode.Label(), Value: mean},
		{Label: "Positive Reviews", Value: countWithPct(agg.PositiveCount, agg.PositivePct)},
		{Label: "Negative Reviews", Value: countWithPct(agg.NegativeCount, agg.NegativePct)},
	}

	data.Histogram = histogramBars(snap.Histogram)
	data.Ratings = ratingBars(agg.ByRating)

	for _, s := range snap.Samples {
		group := sampleGroup{
			Title:   s.Category.String() + " Reviews",
			Total:   s.Total,
			Reviews: make([]sampleReview, 0, len(s.Reviews)),
		}
		for _, rv := range s.Reviews {
			group.Reviews = append(group.Reviews, sampleReview{
				Header:  fmt.Sprintf("Score: %d | Sentiment: %.2f", rv.Score, rv.Sentiment),
				Content: rv.Content,
			})
		}
		data.Samples = append(data.Samples, group)
	}
}

// countWithPct formats "n (p.p%)", or just n when there is no percentage.
func countWithPct(n int, pct *float64) string {
	if pct == nil {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d (%.1f%%)", n, *pct)
}

func histogramBars(h models.Histogram) []histogramBar {
	maxCount := 0
	for _, b := range h.Bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	bars := make([]histogramBar, 0, len(h.Bins))
	for _, b := range h.Bins {
		height := 0.0
		if maxCount > 0 {
			height = float64(b.Count) / float64(maxCount) * 100
		}
		bars = append(bars, histogramBar{
			Range:  fmt.Sprintf("%.2f to %.2f", b.Lower, b.Upper),
			Count:  b.Count,
			Height: height,
		})
	}
	return bars
}

func ratingBars(means []models.RatingMean) []ratingBar {
	bars := make([]ratingBar, 0, len(means))
	for i, m := range means {
		bars = append(bars, ratingBar{
			Score:    m.Score,
			Count:    m.Count,
			Mean:     fmt.Sprintf("%.2f", m.MeanSentiment),
			Color:    ratingColors[i%len(ratingColors)],
			Width:    math.Min(math.Abs(m.MeanSentiment), 1) * 100,
			Negative: m.MeanSentiment < 0,
		})
	}
	return bars
}
