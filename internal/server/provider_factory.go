package server

import (
	"log/slog"
	"time"

	"league-hub/internal/config"
	"league-hub/internal/metrics"
	"league-hub/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.LeagueProvider {
	base := selectProvider(cfg, f.logger)
	// Shared rate limiter to respect the feed quota even when the poll
	// interval is shorter.
	limited := providers.NewRateLimitedProvider(base, rateLimitInterval(cfg), f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

// rateLimitInterval sizes the limiter for the two feed calls each poll
// cycle makes (games + standings).
func rateLimitInterval(cfg config.Config) time.Duration {
	if cfg.PollInterval > 0 && cfg.PollInterval < 2*time.Minute {
		return cfg.PollInterval / 2
	}
	return time.Minute
}
