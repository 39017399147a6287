package server

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"league-hub/internal/app/bracket"
	"league-hub/internal/cache"
	"league-hub/internal/config"
	"league-hub/internal/store"
	"league-hub/internal/store/postgres"
)

// buildMatchStore prefers Postgres when a DSN is configured and falls
// back to the in-memory store otherwise.
func buildMatchStore(cfg config.Config, logger *slog.Logger) (bracket.Store, func() error) {
	if cfg.PostgresDSN == "" {
		return store.NewMatchStore(), nil
	}

	pg, err := postgres.New(cfg.PostgresDSN)
	if err != nil {
		if logger != nil {
			logger.Warn("postgres unavailable, using in-memory match store", "error", err)
		}
		return store.NewMatchStore(), nil
	}
	if logger != nil {
		logger.Info("playoff matches backed by postgres")
	}
	return pg, pg.Close
}

// buildBracketCache connects the redis-backed view cache when REDIS_URL
// is set. A nil cache disables caching without changing behavior.
func buildBracketCache(cfg config.Config, logger *slog.Logger) (*cache.BracketCache, func() error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		if logger != nil {
			logger.Warn("invalid redis url, bracket cache disabled", "error", err)
		}
		return nil, nil
	}
	client := redis.NewClient(opts)
	return cache.NewBracketCache(client, logger), client.Close
}
