// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "reviews_test", "connection refused"))

	RecordDBQuery("SELECT", "reviews_test", 10*time.Millisecond, nil)
	RecordDBQuery("SELECT", "reviews_test", 10*time.Millisecond, errors.New("connection refused"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "reviews_test", "connection refused"))
	if after-before != 1 {
		t.Errorf("error counter delta = %v, want 1", after-before)
	}
}

// TestRecordDBQuery_ErrorTruncation verifies long error labels are capped
func TestRecordDBQuery_ErrorTruncation(t *testing.T) {
	long := "this is a very long error message that exceeds fifty characters and should be truncated"
	RecordDBQuery("SELECT", "truncation_test", time.Millisecond, errors.New(long))

	got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "truncation_test", long[:50]))
	if got != 1 {
		t.Errorf("truncated label counter = %v, want 1", got)
	}
}

func TestRecordFetch(t *testing.T) {
	RecordFetch(150*time.Millisecond, 42, "")
	if got := testutil.ToFloat64(ReviewsFetched); got != 42 {
		t.Errorf("ReviewsFetched = %v, want 42", got)
	}

	before := testutil.ToFloat64(FetchErrors.WithLabelValues("connection"))
	RecordFetch(time.Second, 0, "connection")
	if got := testutil.ToFloat64(FetchErrors.WithLabelValues("connection")); got-before != 1 {
		t.Errorf("FetchErrors delta = %v, want 1", got-before)
	}
	// A failed fetch leaves the last row count in place.
	if got := testutil.ToFloat64(ReviewsFetched); got != 42 {
		t.Errorf("ReviewsFetched after error = %v, want 42", got)
	}
}

func TestRecordPipelineRun(t *testing.T) {
	before := testutil.ToFloat64(PipelineRuns.WithLabelValues("polarity", "false"))
	RecordPipelineRun("polarity", false, 2*time.Millisecond)
	if got := testutil.ToFloat64(PipelineRuns.WithLabelValues("polarity", "false")); got-before != 1 {
		t.Errorf("PipelineRuns delta = %v, want 1", got-before)
	}

	m := &dto.Metric{}
	observer, err := PipelineDuration.GetMetricWithLabelValues("polarity")
	if err != nil {
		t.Fatal(err)
	}
	if err := observer.(prometheus.Histogram).Write(m); err != nil {
		t.Fatal(err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("expected at least one pipeline duration sample")
	}
}

func TestUpdateScorerCache(t *testing.T) {
	UpdateScorerCache(10, 4, 3)
	if testutil.ToFloat64(ScorerCacheHits) != 10 || testutil.ToFloat64(ScorerCacheMisses) != 4 || testutil.ToFloat64(ScorerCacheSize) != 3 {
		t.Error("scorer cache gauges not updated")
	}
}

// TestTrackActiveRequest tests active request tracking
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/sentiment/summary", "200"))
	RecordAPIRequest("GET", "/api/v1/sentiment/summary", "200", 25*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/sentiment/summary", "200"))
	if after-before != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", after-before)
	}
}

func TestAppMetrics(t *testing.T) {
	SetAppInfo("test", "go1.24")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("test", "go1.24")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
	TrackUptime(time.Now().Add(-time.Minute))
	if got := testutil.ToFloat64(AppUptime); got < 59 {
		t.Errorf("AppUptime = %v, want >= 59", got)
	}
}

// TestConcurrentMetricRecording checks collectors under parallel use
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordFetch(time.Millisecond, 5, "")
			RecordPipelineRun("subjectivity", true, time.Millisecond)
			RecordAPIRequest("GET", "/concurrent", "200", time.Millisecond)
		}()
	}
	wg.Wait()
}

// TestMetricsRegistration verifies all metrics are properly registered
func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		DBQueryDuration,
		DBQueryErrors,
		FetchDuration,
		ReviewsFetched,
		FetchErrors,
		PipelineRuns,
		PipelineDuration,
		ScorerCacheHits,
		ScorerCacheMisses,
		ScorerCacheSize,
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerConsecutiveFailures,
		CircuitBreakerTransitions,
		AppInfo,
		AppUptime,
	}

	for _, c := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// TestMetricGathering lints the default registry
func TestMetricGathering(t *testing.T) {
	RecordFetch(time.Millisecond, 1, "")

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordDBQuery(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordDBQuery("SELECT", "spotify_reviews", 10*time.Millisecond, nil)
	}
}

func BenchmarkRecordPipelineRun(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordPipelineRun("polarity", true, time.Millisecond)
	}
}
