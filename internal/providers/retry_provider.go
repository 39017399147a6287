package providers

import (
	"context"
	"log/slog"
	"time"

	"league-hub/internal/domain"
	"league-hub/internal/logging"
	"league-hub/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a LeagueProvider with retry/backoff behavior
// and records every attempt against the metrics recorder.
type retryingProvider struct {
	inner       LeagueProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	err := r.retry(ctx, "games", func(c context.Context) error {
		var innerErr error
		games, innerErr = r.inner.FetchGames(c)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *retryingProvider) FetchStandings(ctx context.Context) ([]domain.Standings, error) {
	var standings []domain.Standings
	err := r.retry(ctx, "standings", func(c context.Context) error {
		var innerErr error
		standings, innerErr = r.inner.FetchStandings(c)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return standings, nil
}

func (r *retryingProvider) retry(ctx context.Context, what string, fetch func(context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fetch(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "what", what, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "what", what, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldProvider, r.name))
		logger.Warn(msg, args...)
	}
}
