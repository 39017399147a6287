package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"league-hub/internal/app/bracket"
	"league-hub/internal/auth"
	"league-hub/internal/domain/playoffs"
	"league-hub/internal/logging"
)

// PlayoffsHandler serves the bracket views and the admin-gated match
// mutations.
type PlayoffsHandler struct {
	svc        *bracket.Service
	adminToken string
	logger     *slog.Logger
}

// NewPlayoffsHandler constructs a PlayoffsHandler. An empty adminToken
// disables every mutation.
func NewPlayoffsHandler(svc *bracket.Service, adminToken string, logger *slog.Logger) *PlayoffsHandler {
	return &PlayoffsHandler{
		svc:        svc,
		adminToken: adminToken,
		logger:     logger,
	}
}

type createMatchRequest struct {
	Round       string `json:"round"`
	MatchNumber int    `json:"matchNumber"`
	Seed1       int    `json:"seed1"`
	Seed2       int    `json:"seed2"`
}

// Bracket returns every round's matches grouped into the five buckets.
func (h *PlayoffsHandler) Bracket(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Bracket(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view, loggerFromContext(r, h.logger))
}

// Round returns one round's matches ordered by match number.
func (h *PlayoffsHandler) Round(w http.ResponseWriter, r *http.Request) {
	round := playoffs.Round(chi.URLParam(r, "round"))
	matches, err := h.svc.ListByRound(r.Context(), round)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matches, loggerFromContext(r, h.logger))
}

// CreateMatch adds a match with empty team slots.
func (h *PlayoffsHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid payload", h.logger)
		return
	}
	round := playoffs.Round(req.Round)
	if !round.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown round", h.logger)
		return
	}

	match, err := h.svc.Create(r.Context(), h.actor(r), round, req.MatchNumber, req.Seed1, req.Seed2)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, match, loggerFromContext(r, h.logger))
}

// UpdateMatch merges a partial payload into an existing match. Omitted
// fields stay untouched; explicit nulls clear stored values.
func (h *PlayoffsHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	var patch playoffs.MatchPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid payload", h.logger)
		return
	}

	match, err := h.svc.Update(r.Context(), h.actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, match, loggerFromContext(r, h.logger))
}

// DeleteMatch removes a match.
func (h *PlayoffsHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), h.actor(r), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Setup seeds the play-in round for the 12-team layout.
func (h *PlayoffsHandler) Setup(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.SetupBracket(r.Context(), h.actor(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created, loggerFromContext(r, h.logger))
}

func (h *PlayoffsHandler) actor(r *http.Request) auth.Actor {
	return auth.FromBearerToken(bearerToken(r), h.adminToken)
}

func (h *PlayoffsHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, playoffs.ErrPermissionDenied):
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
	case errors.Is(err, playoffs.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "match not found", logger)
	case errors.Is(err, playoffs.ErrDuplicateMatch):
		writeError(w, r, http.StatusConflict, "match number already taken for round", logger)
	case errors.Is(err, playoffs.ErrAlreadySeeded):
		writeError(w, r, http.StatusConflict, "bracket already seeded", logger)
	default:
		logging.Error(logger, "playoffs request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}
