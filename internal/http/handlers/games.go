// Package handlers wires HTTP routes to the domain services.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"league-hub/internal/app/scores"
	"league-hub/internal/domain"
	"league-hub/internal/poller"
	"league-hub/internal/snapshots"
)

// GamesHandler serves the fan-facing scoreboard routes.
type GamesHandler struct {
	svc         *scores.Service
	snaps       snapshots.Store
	logger      *slog.Logger
	currentWeek func() int
	statusFn    func() poller.Status
}

// NewGamesHandler constructs a GamesHandler.
func NewGamesHandler(svc *scores.Service, snaps snapshots.Store, logger *slog.Logger, currentWeek func() int, statusFn func() poller.Status) *GamesHandler {
	return &GamesHandler{
		svc:         svc,
		snaps:       snaps,
		logger:      logger,
		currentWeek: currentWeek,
		statusFn:    statusFn,
	}
}

// Health reports the service health.
func (h *GamesHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *GamesHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the current week's games, or an archived week when
// ?week=N names a past one.
func (h *GamesHandler) Games(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	current := 0
	if h.currentWeek != nil {
		current = h.currentWeek()
	}

	weekParam := strings.TrimSpace(r.URL.Query().Get("week"))
	if weekParam == "" {
		writeJSON(w, http.StatusOK, domain.NewWeekResponse(current, h.svc.Games()), logger)
		return
	}

	week, err := strconv.Atoi(weekParam)
	if err != nil || week <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid week", logger)
		return
	}
	if week == current {
		writeJSON(w, http.StatusOK, domain.NewWeekResponse(week, h.svc.GamesByWeek(week)), logger)
		return
	}

	if h.snaps == nil {
		writeError(w, r, http.StatusNotFound, "week not found", logger)
		return
	}
	snap, err := h.snaps.LoadWeek(week)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "week not found", logger)
		return
	}
	writeJSON(w, http.StatusOK, snap, logger)
}

// GameByID returns a single game.
func (h *GamesHandler) GameByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	game, ok := h.svc.GameByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, game, loggerFromContext(r, h.logger))
}

// Probability returns the win-probability estimate for one game.
func (h *GamesHandler) Probability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	prob, ok := h.svc.Probability(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, prob, loggerFromContext(r, h.logger))
}

// Standings returns the season-to-date standings table.
func (h *GamesHandler) Standings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Standings(), loggerFromContext(r, h.logger))
}
