// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shelfmark/shelfmark/internal/media"
	"github.com/shelfmark/shelfmark/internal/metrics"
)

// DefaultNeighborhoodSize is the number of most similar users that
// contribute to a prediction. Fixed default for reproducibility.
const DefaultNeighborhoodSize = 20

// RatingSource feeds the engine with the full review relation.
// Implemented by the database layer.
type RatingSource interface {
	AllRatings(ctx context.Context) ([]media.Rating, error)
}

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	// NeighborhoodSize caps how many positively correlated users
	// contribute to each prediction. Defaults to
	// DefaultNeighborhoodSize.
	NeighborhoodSize int

	// MaxUsers bounds the universe size. Zero means unbounded.
	MaxUsers int

	// UniverseTTL keeps a built universe around for reuse. Zero
	// disables caching: every call rebuilds from the source, so new
	// ratings are visible immediately. With a TTL, a rating may be
	// missed for at most that long.
	UniverseTTL time.Duration
}

// Engine runs user-based and item-association recommendations over
// universe snapshots pulled from a RatingSource. Safe for concurrent
// use; concurrent callers either share one immutable cached universe
// or each build their own.
type Engine struct {
	source RatingSource
	opts   Options

	mu       sync.Mutex
	cached   Universe
	cachedAt time.Time
}

// NewEngine creates an engine reading from source.
func NewEngine(source RatingSource, opts Options) *Engine {
	if opts.NeighborhoodSize <= 0 {
		opts.NeighborhoodSize = DefaultNeighborhoodSize
	}
	return &Engine{source: source, opts: opts}
}

// universe returns a snapshot to compute against, rebuilding from the
// source unless a cached one is still within its TTL. The returned
// universe is never mutated afterwards.
func (e *Engine) universe(ctx context.Context) (Universe, error) {
	if e.opts.UniverseTTL > 0 {
		e.mu.Lock()
		if e.cached != nil && time.Since(e.cachedAt) < e.opts.UniverseTTL {
			u := e.cached
			e.mu.Unlock()
			return u, nil
		}
		e.mu.Unlock()
	}

	ratings, err := e.source.AllRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating feed: %w", err)
	}
	u := BuildUniverse(ratings, e.opts.MaxUsers)
	metrics.UniverseUsers.Set(float64(len(u)))

	if e.opts.UniverseTTL > 0 {
		e.mu.Lock()
		e.cached = u
		e.cachedAt = time.Now()
		e.mu.Unlock()
	}
	return u, nil
}

// RefreshUniverse rebuilds the cached universe from the source. It is
// a no-op unless TTL caching is enabled; the background refresher
// calls it so requests rarely pay the rebuild cost themselves.
func (e *Engine) RefreshUniverse(ctx context.Context) error {
	if e.opts.UniverseTTL <= 0 {
		return nil
	}
	ratings, err := e.source.AllRatings(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh rating universe: %w", err)
	}
	u := BuildUniverse(ratings, e.opts.MaxUsers)
	metrics.UniverseUsers.Set(float64(len(u)))

	e.mu.Lock()
	e.cached = u
	e.cachedAt = time.Now()
	e.mu.Unlock()
	return nil
}

// invalidateUniverse drops any cached universe so the next call
// rebuilds from the source.
func (e *Engine) invalidateUniverse() {
	e.mu.Lock()
	e.cached = nil
	e.mu.Unlock()
}

// Recommend predicts the topN best unseen items for a user. An empty
// result is a normal outcome (unknown user, no positive neighbors, or
// nothing left to recommend) and signals the caller to fall back.
func (e *Engine) Recommend(ctx context.Context, userID, topN int) ([]media.Key, error) {
	u, err := e.universe(ctx)
	if err != nil {
		return nil, err
	}
	return Recommend(u, userID, e.opts.NeighborhoodSize, topN), nil
}

// Related returns the topN items that raters of key also rated,
// ranked by summed raw ratings. An empty result is normal when nobody
// has rated the seed item.
func (e *Engine) Related(ctx context.Context, key media.Key, topN int) ([]media.Key, error) {
	u, err := e.universe(ctx)
	if err != nil {
		return nil, err
	}
	return Related(u, key, topN), nil
}

// Recommend is the pure user-based computation over one universe.
//
// Every other user's similarity to the target is computed, only
// strictly positive scores are kept, and the neighborhood highest
// scores contribute. For each item a neighbor rated that the target
// has not, the prediction is the similarity-weighted average of the
// neighbors' ratings. Ties in predicted rating break by key order so
// output is stable across runs.
func Recommend(u Universe, userID, neighborhood, topN int) []media.Key {
	if neighborhood <= 0 {
		neighborhood = DefaultNeighborhoodSize
	}
	target, ok := u[userID]
	if !ok || len(target) == 0 {
		return nil
	}

	neighbors := make([]SimilarityScore, 0, len(u))
	for id, profile := range u {
		if id == userID {
			continue
		}
		if s := Similarity(target, profile); s > 0 {
			neighbors = append(neighbors, SimilarityScore{UserID: id, Score: s})
		}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Score != neighbors[j].Score {
			return neighbors[i].Score > neighbors[j].Score
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})
	if len(neighbors) > neighborhood {
		neighbors = neighbors[:neighborhood]
	}

	type accumulator struct {
		score  float64
		weight float64
	}
	acc := make(map[media.Key]*accumulator)
	for _, n := range neighbors {
		for key, rating := range u[n.UserID] {
			if _, rated := target[key]; rated {
				continue
			}
			a, ok := acc[key]
			if !ok {
				a = &accumulator{}
				acc[key] = a
			}
			a.score += rating * n.Score
			a.weight += n.Score
		}
	}

	type candidate struct {
		key       media.Key
		predicted float64
	}
	candidates := make([]candidate, 0, len(acc))
	for key, a := range acc {
		// weight > 0 holds for every key here because each
		// contributing similarity was > 0.
		candidates = append(candidates, candidate{key: key, predicted: a.score / a.weight})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].predicted != candidates[j].predicted {
			return candidates[i].predicted > candidates[j].predicted
		}
		return candidates[i].key.Less(candidates[j].key)
	})

	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}
	keys := make([]media.Key, len(candidates))
	for i, c := range candidates {
		keys[i] = c.key
	}
	return keys
}

// Related is the pure item-association computation over one universe.
//
// It finds every user who rated the seed key and sums the raw ratings
// those users gave to each other item. The sum is deliberately not
// normalized by rater count, so items rated highly by many co-raters
// dominate. Ties break by key order.
func Related(u Universe, seed media.Key, topN int) []media.Key {
	sums := make(map[media.Key]float64)
	for _, profile := range u {
		if _, rated := profile[seed]; !rated {
			continue
		}
		for key, rating := range profile {
			if key == seed {
				continue
			}
			sums[key] += rating
		}
	}

	type scored struct {
		key media.Key
		sum float64
	}
	items := make([]scored, 0, len(sums))
	for key, sum := range sums {
		items = append(items, scored{key: key, sum: sum})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].sum != items[j].sum {
			return items[i].sum > items[j].sum
		}
		return items[i].key.Less(items[j].key)
	})

	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}
	keys := make([]media.Key, len(items))
	for i, it := range items {
		keys[i] = it.key
	}
	return keys
}
