package providers

import (
	"context"
	"log/slog"
	"time"

	"league-hub/internal/domain"
)

// rateLimitedProvider wraps a LeagueProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     LeagueProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a LeagueProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next LeagueProvider, interval time.Duration, logger *slog.Logger) LeagueProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	if err := p.wait(ctx, "games"); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context) ([]domain.Standings, error) {
	if err := p.wait(ctx, "standings"); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx)
}

func (p *rateLimitedProvider) wait(ctx context.Context, what string) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"), slog.String("what", what))
		}
		return ctx.Err()
	case <-p.ticker.C:
	}
	return nil
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
