package server

import (
	"log/slog"

	"league-hub/internal/config"
	"league-hub/internal/providers"
	"league-hub/internal/providers/bffl"
	"league-hub/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.LeagueProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New(cfg.CurrentWeek)
	case "bffl":
		return bffl.NewClient(bffl.Config{
			BaseURL: cfg.League.BaseURL,
			APIKey:  cfg.League.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(cfg.CurrentWeek)
	}
}
