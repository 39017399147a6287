// Package http assembles the route table for the public API.
package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"league-hub/internal/http/handlers"
)

// RouterConfig controls cross-cutting route behavior.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter registers the HTTP routes. The admin handler is optional;
// mutation routes stay registered regardless and reject requests without
// a valid token.
func NewRouter(games *handlers.GamesHandler, playoffs *handlers.PlayoffsHandler, admin *handlers.AdminHandler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodPatch, nethttp.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", games.Health)
	r.Get("/ready", games.Ready)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", games.Games)
		r.Get("/{id}", games.GameByID)
		r.Get("/{id}/probability", games.Probability)
	})

	r.Get("/standings", games.Standings)

	r.Route("/playoffs", func(r chi.Router) {
		r.Get("/", playoffs.Bracket)
		r.Get("/{round}", playoffs.Round)
		r.Post("/setup", playoffs.Setup)
		r.Post("/matches", playoffs.CreateMatch)
		r.Patch("/matches/{id}", playoffs.UpdateMatch)
		r.Delete("/matches/{id}", playoffs.DeleteMatch)
	})

	if admin != nil {
		r.Post("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}

	return r
}
