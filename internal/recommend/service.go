// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package recommend

import (
	"context"
	"time"

	"github.com/shelfmark/shelfmark/internal/logging"
	"github.com/shelfmark/shelfmark/internal/media"
	"github.com/shelfmark/shelfmark/internal/metrics"
)

// ServiceConfig sets the result-count policy for the service.
type ServiceConfig struct {
	// DefaultTopN is used when the caller passes topN <= 0 to ForUser.
	DefaultTopN int
	// MaxTopN caps any requested topN.
	MaxTopN int
	// RelatedTopN is used when the caller passes topN <= 0 to AlsoLiked.
	RelatedTopN int
}

// Service is the external-facing recommendation flow: engine output
// resolved into catalog records, with random fallback when the
// personalized path yields nothing. This is what the HTTP layer calls.
type Service struct {
	engine   *Engine
	resolver *Resolver
	catalog  Catalog
	cfg      ServiceConfig
}

// NewService wires an engine and catalog into a service.
func NewService(engine *Engine, catalog Catalog, cfg ServiceConfig) *Service {
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = 10
	}
	if cfg.RelatedTopN <= 0 {
		cfg.RelatedTopN = 3
	}
	return &Service{
		engine:   engine,
		resolver: NewResolver(catalog),
		catalog:  catalog,
		cfg:      cfg,
	}
}

func (s *Service) clamp(topN, fallback int) int {
	if topN <= 0 {
		topN = fallback
	}
	if s.cfg.MaxTopN > 0 && topN > s.cfg.MaxTopN {
		topN = s.cfg.MaxTopN
	}
	return topN
}

// ForUser returns up to topN personalized recommendations for a user,
// resolved into catalog records. When the personalized path produces
// nothing, it substitutes one random item per category instead of
// returning an empty page; the second return value reports whether
// that fallback was used.
func (s *Service) ForUser(ctx context.Context, userID, topN int) ([]media.Detail, bool, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveRecommendation("user", time.Since(start).Seconds())
	}()

	topN = s.clamp(topN, s.cfg.DefaultTopN)

	keys, err := s.engine.Recommend(ctx, userID, topN)
	if err != nil {
		return nil, false, err
	}

	details, err := s.resolver.Resolve(ctx, keys)
	if err != nil {
		return nil, false, err
	}
	if len(details) > 0 {
		return details, false, nil
	}

	logging.Ctx(ctx).Debug().
		Int("user_id", userID).
		Msg("No personalized recommendations, sampling fallback")
	metrics.RecommendationFallbacks.Inc()
	sampled, err := Fallback(ctx, s.catalog)
	if err != nil {
		return nil, false, err
	}
	return sampled, true, nil
}

// AlsoLiked returns up to topN items that raters of the given item
// also rated, resolved into catalog records. An empty list is a valid
// answer; no fallback applies here.
func (s *Service) AlsoLiked(ctx context.Context, key media.Key, topN int) ([]media.Detail, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveRecommendation("also_liked", time.Since(start).Seconds())
	}()

	topN = s.clamp(topN, s.cfg.RelatedTopN)

	keys, err := s.engine.Related(ctx, key, topN)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, keys)
}
