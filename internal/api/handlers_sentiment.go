// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package api

import (
	"net/http"

	"github.com/tomtom215/reviewscope/internal/dashboard"
	"github.com/tomtom215/reviewscope/internal/models"
	"github.com/tomtom215/reviewscope/internal/pipeline"
)

// render runs one dashboard render and writes the error response on
// failure. ok is false when a response has already been written.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, req dashboard.Request) (*dashboard.Snapshot, bool) {
	snap, err := h.service.RenderRequest(r.Context(), req)
	if err != nil {
		respondRenderError(w, err)
		return nil, false
	}
	return snap, true
}

// SentimentSummary returns the aggregates of all reviews.
//
// @Summary Sentiment summary
// @Description Mean sentiment, positive and negative counts with percentages, per-category counts and per-rating means. With no reviews has_data is false and mean and percentages are null.
// @Tags Sentiment
// @Produce json
// @Param mode query string false "Scoring mode" Enums(polarity, subjectivity)
// @Success 200 {object} models.APIResponse{data=models.SummaryResponse}
// @Failure 400 {object} models.APIResponse "Invalid mode"
// @Failure 500 {object} models.APIResponse "Review query failed"
// @Failure 503 {object} models.APIResponse "Review store unavailable"
// @Router /sentiment/summary [get]
func (h *Handler) SentimentSummary(w http.ResponseWriter, r *http.Request) {
	req := SentimentRequest{Mode: r.URL.Query().Get("mode")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.render(w, r, dashboard.Request{Mode: h.resolveMode(req.Mode)})
	if !ok {
		return
	}

	respondSuccess(w, models.SummaryResponse{
		Mode:       snap.Mode,
		Aggregates: snap.Aggregates,
		Notice:     snap.Notice,
	}, queryTime(snap.FetchMS, snap.PipelineMS))
}

// SentimentByRating returns the mean sentiment per star rating.
//
// @Summary Sentiment by rating
// @Description Mean sentiment of each star rating present in the data, ascending by rating.
// @Tags Sentiment
// @Produce json
// @Param mode query string false "Scoring mode" Enums(polarity, subjectivity)
// @Success 200 {object} models.APIResponse{data=models.ByRatingResponse}
// @Failure 400 {object} models.APIResponse "Invalid mode"
// @Failure 503 {object} models.APIResponse "Review store unavailable"
// @Router /sentiment/by-rating [get]
func (h *Handler) SentimentByRating(w http.ResponseWriter, r *http.Request) {
	req := SentimentRequest{Mode: r.URL.Query().Get("mode")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.render(w, r, dashboard.Request{Mode: h.resolveMode(req.Mode)})
	if !ok {
		return
	}

	byRating := snap.Aggregates.ByRating
	if byRating == nil {
		byRating = []models.RatingMean{}
	}
	respondSuccess(w, models.ByRatingResponse{
		Mode:     snap.Mode,
		HasData:  snap.Aggregates.HasData,
		ByRating: byRating,
	}, queryTime(snap.FetchMS, snap.PipelineMS))
}

// SentimentDistribution returns the sentiment histogram.
//
// @Summary Sentiment distribution
// @Description Histogram of sentiment values over the range of the mode ([-1, 1] for polarity, [0, 1] for subjectivity).
// @Tags Sentiment
// @Produce json
// @Param mode query string false "Scoring mode" Enums(polarity, subjectivity)
// @Param bins query int false "Number of bins (1-200, default from config)"
// @Success 200 {object} models.APIResponse{data=models.DistributionResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Review store unavailable"
// @Router /sentiment/distribution [get]
func (h *Handler) SentimentDistribution(w http.ResponseWriter, r *http.Request) {
	bins, apiErr := intParam(r, "bins", 0)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := DistributionRequest{Mode: r.URL.Query().Get("mode"), Bins: bins}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.render(w, r, dashboard.Request{Mode: h.resolveMode(req.Mode), HistogramBins: req.Bins})
	if !ok {
		return
	}

	respondSuccess(w, models.DistributionResponse{
		Mode:      snap.Mode,
		HasData:   snap.Aggregates.HasData,
		Histogram: snap.Histogram,
	}, queryTime(snap.FetchMS, snap.PipelineMS))
}

// SentimentSamples returns random reviews from each non-empty category.
//
// @Summary Category samples
// @Description Up to size randomly chosen reviews per category, in the order Negative, Neutral, Positive. Empty categories are omitted.
// @Tags Sentiment
// @Produce json
// @Param mode query string false "Scoring mode" Enums(polarity, subjectivity)
// @Param size query int false "Reviews per category (1-100, default from config)"
// @Success 200 {object} models.APIResponse{data=models.SamplesResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Review store unavailable"
// @Router /sentiment/samples [get]
func (h *Handler) SentimentSamples(w http.ResponseWriter, r *http.Request) {
	size, apiErr := intParam(r, "size", 0)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := SamplesRequest{Mode: r.URL.Query().Get("mode"), Size: size}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.render(w, r, dashboard.Request{Mode: h.resolveMode(req.Mode), SampleSize: req.Size})
	if !ok {
		return
	}

	samples := snap.Samples
	if samples == nil {
		samples = []models.CategorySample{}
	}
	respondSuccess(w, models.SamplesResponse{
		Mode:    snap.Mode,
		Samples: samples,
	}, queryTime(snap.FetchMS, snap.PipelineMS))
}

// Reviews returns a page of scored reviews.
//
// @Summary Scored reviews
// @Description Scored reviews in store order, optionally restricted to one category.
// @Tags Reviews
// @Produce json
// @Param mode query string false "Scoring mode" Enums(polarity, subjectivity)
// @Param category query string false "Sentiment category" Enums(negative, neutral, positive)
// @Param limit query int false "Page size (1-1000, default 100)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} models.APIResponse{data=models.ReviewsResponse}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 503 {object} models.APIResponse "Review store unavailable"
// @Router /reviews [get]
func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	limit, apiErr := intParam(r, "limit", defaultReviewsLimit)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	offset, apiErr := intParam(r, "offset", 0)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	q := r.URL.Query()
	req := ReviewsRequest{
		Mode:     q.Get("mode"),
		Category: q.Get("category"),
		Limit:    limit,
		Offset:   offset,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.render(w, r, dashboard.Request{Mode: h.resolveMode(req.Mode)})
	if !ok {
		return
	}

	reviews := snap.Reviews
	var category *models.Category
	if req.Category != "" {
		c, err := models.ParseCategory(req.Category)
		if err == nil {
			category = &c
			reviews = pipeline.Filter(reviews, c)
		}
	}

	page, hasMore := paginate(reviews, req.Offset, req.Limit)
	respondSuccess(w, models.ReviewsResponse{
		Mode:     snap.Mode,
		Category: category,
		Reviews:  page,
		Pagination: models.PaginationInfo{
			Limit:      req.Limit,
			Offset:     req.Offset,
			TotalCount: len(reviews),
			HasMore:    hasMore,
		},
	}, queryTime(snap.FetchMS, snap.PipelineMS))
}

// paginate returns reviews[offset:offset+limit], clamped, never nil.
func paginate(reviews []models.ScoredReview, offset, limit int) ([]models.ScoredReview, bool) {
	if offset >= len(reviews) {
		return []models.ScoredReview{}, false
	}
	end := offset + limit
	if end > len(reviews) {
		end = len(reviews)
	}
	return reviews[offset:end], end < len(reviews)
}

// Dashboard returns the full snapshot behind the HTML dashboard.
//
// @Summary Dashboard snapshot
// @Description Everything one dashboard render shows, from a single fetch and pipeline run.
// @Tags Sentiment
// @Produce json
// @Param mode query string false "Scoring mode" Enums(polarity, subjectivity)
// @Success 200 {object} models.APIResponse{data=models.DashboardSnapshot}
// @Failure 400 {object} models.APIResponse "Invalid mode"
// @Failure 503 {object} models.APIResponse "Review store unavailable"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	req := SentimentRequest{Mode: r.URL.Query().Get("mode")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ok := h.render(w, r, dashboard.Request{Mode: h.resolveMode(req.Mode)})
	if !ok {
		return
	}

	respondSuccess(w, snap.DashboardSnapshot, queryTime(snap.FetchMS, snap.PipelineMS))
}
