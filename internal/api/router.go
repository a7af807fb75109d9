// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shelfmark/shelfmark/internal/config"
	"github.com/shelfmark/shelfmark/internal/middleware"
)

// Router wires the handler set into the Chi route tree.
type Router struct {
	handler *Handler
	cfg     *config.APIConfig
}

// NewRouter creates a router around handler.
func NewRouter(handler *Handler, cfg *config.APIConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the full route tree with the global middleware stack.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	}))

	// Health endpoints get a permissive limit so monitoring can poll
	// freely without opening an abuse vector.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/", rt.handler.HealthReady)
		r.Get("/live", rt.handler.HealthLive)
		r.Get("/ready", rt.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(rt.cfg.RateLimitRequests, rt.cfg.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/recommendations/user/{userID}", rt.handler.Recommendations)
		r.Get("/media/{category}/{mediaID}/also-liked", rt.handler.AlsoLiked)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})

	return r
}
