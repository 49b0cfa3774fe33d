// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"
)

// ErrInvalidInterval is returned by Serve when the ticker interval is not positive.
var ErrInvalidInterval = errors.New("ticker interval must be positive")

// TickFunc is one unit of periodic work. It must return promptly once ctx
// is canceled.
type TickFunc func(ctx context.Context)

// TickerService runs a function on a fixed interval under suture. The
// function runs once immediately on start. A panic in the function
// propagates to suture, which restarts the service.
type TickerService struct {
	name     string
	interval time.Duration
	tick     TickFunc
}

// NewTickerService creates a ticker named name that calls tick every interval.
//
//	start := time.Now()
//	tree.AddDataService(services.NewTickerService("uptime", 15*time.Second,
//	    func(context.Context) { metrics.TrackUptime(start) }))
func NewTickerService(name string, interval time.Duration, tick TickFunc) *TickerService {
	return &TickerService{name: name, interval: interval, tick: tick}
}

// Serve implements suture.Service.
func (s *TickerService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("%s: %w: %w", s.name, ErrInvalidInterval, suture.ErrDoNotRestart)
	}
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// String names the service in supervisor events.
func (s *TickerService) String() string {
	return s.name
}
