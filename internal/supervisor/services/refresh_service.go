// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// UniverseRefresher rebuilds the engine's cached rating universe.
// Implemented by recommend.Engine.
type UniverseRefresher interface {
	RefreshUniverse(ctx context.Context) error
}

// RefreshService periodically rebuilds the rating universe so that
// requests served from cache stay close to current review data. It
// only makes sense when universe caching is enabled; the interval
// should match or undercut the cache TTL.
type RefreshService struct {
	refresher UniverseRefresher
	interval  time.Duration
	logger    zerolog.Logger
}

// NewRefreshService creates the refresher running every interval.
func NewRefreshService(refresher UniverseRefresher, interval time.Duration, logger zerolog.Logger) *RefreshService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RefreshService{refresher: refresher, interval: interval, logger: logger}
}

// Serve implements suture.Service. Refresh failures are logged and
// retried on the next tick; the rating feed's circuit breaker handles
// persistent outages, so a failed refresh never crashes the service.
func (s *RefreshService) Serve(ctx context.Context) error {
	// Warm the cache immediately so the first request after startup
	// does not pay the full rebuild.
	if err := s.refresher.RefreshUniverse(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Initial universe refresh failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.refresher.RefreshUniverse(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("Universe refresh failed")
			}
		}
	}
}

// String identifies the service in supervisor logs.
func (s *RefreshService) String() string {
	return "universe-refresher"
}
