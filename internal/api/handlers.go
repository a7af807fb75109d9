// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

// Package api provides HTTP routing and handlers for the
// recommendation endpoints using the Chi router.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shelfmark/shelfmark/internal/database"
	"github.com/shelfmark/shelfmark/internal/media"
	"github.com/shelfmark/shelfmark/internal/models"
)

// RecommendationService is the recommendation flow the handlers call.
// Implemented by recommend.Service.
type RecommendationService interface {
	ForUser(ctx context.Context, userID, topN int) ([]media.Detail, bool, error)
	AlsoLiked(ctx context.Context, key media.Key, topN int) ([]media.Detail, error)
}

// Pinger reports storage liveness for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	service RecommendationService
	store   Pinger
	version string
}

// NewHandler creates the handler set.
func NewHandler(service RecommendationService, store Pinger, version string) *Handler {
	return &Handler{service: service, store: store, version: version}
}

type userRecsRequest struct {
	UserID int `validate:"min=1"`
	TopN   int `validate:"min=0,max=1000"`
}

type alsoLikedRequest struct {
	MediaID int `validate:"min=1"`
	TopN    int `validate:"min=0,max=1000"`
}

// Recommendations serves GET /api/v1/recommendations/user/{userID}.
// The optional k query parameter overrides the default result count.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "userID must be an integer", nil)
		return
	}

	req := userRecsRequest{
		UserID: userID,
		TopN:   getIntParam(r, "k", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	details, fallback, err := h.service.ForUser(r.Context(), req.UserID, req.TopN)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationList{
			Results: details,
			Count:   len(details),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Fallback:    fallback,
		},
	})
}

// AlsoLiked serves GET /api/v1/media/{category}/{mediaID}/also-liked.
func (h *Handler) AlsoLiked(w http.ResponseWriter, r *http.Request) {
	category, err := media.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_CATEGORY",
			"category must be one of: game, movie, show, book", nil)
		return
	}

	mediaID, err := strconv.Atoi(chi.URLParam(r, "mediaID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "mediaID must be an integer", nil)
		return
	}

	req := alsoLikedRequest{
		MediaID: mediaID,
		TopN:    getIntParam(r, "k", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	details, err := h.service.AlsoLiked(r.Context(), media.Key{Category: category, ID: req.MediaID}, req.TopN)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationList{
			Results: details,
			Count:   len(details),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondServiceError maps service failures onto the error taxonomy.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, database.ErrUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE",
			"rating data is temporarily unavailable", err)
		return
	}
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
		"an unexpected error occurred", err)
}

// HealthLive serves GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     models.HealthStatus{Status: "alive", Version: h.version},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady serves GET /api/v1/health/ready. It checks the store so
// load balancers stop routing when the database is gone.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     models.HealthStatus{Status: "not ready", Database: "unreachable", Version: h.version},
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    "DATA_UNAVAILABLE",
				Message: "database is unreachable",
			},
		})
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     models.HealthStatus{Status: "ready", Database: "ok", Version: h.version},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
