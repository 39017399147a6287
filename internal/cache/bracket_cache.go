// Package cache keeps the assembled bracket view in Redis so the fan
// site's polling reads skip the match store between admin edits.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"league-hub/internal/domain/playoffs"
	"league-hub/internal/logging"
)

const (
	bracketKey = "bracket:view"
	defaultTTL = 30 * time.Second
)

// BracketCache stores the rendered bracket under a single key. A nil
// Redis client degrades to a pass-through so the service runs without
// Redis configured.
type BracketCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewBracketCache constructs a cache; client may be nil.
func NewBracketCache(client *redis.Client, logger *slog.Logger) *BracketCache {
	return &BracketCache{
		client: client,
		logger: logger,
		ttl:    defaultTTL,
	}
}

// Get returns the cached bracket if present and decodable.
func (c *BracketCache) Get(ctx context.Context) (playoffs.Bracket, bool) {
	if c == nil || c.client == nil {
		return playoffs.Bracket{}, false
	}

	raw, err := c.client.Get(ctx, bracketKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Warn(c.logger, "bracket cache read failed", "error", err)
		}
		return playoffs.Bracket{}, false
	}

	var bracket playoffs.Bracket
	if err := json.Unmarshal(raw, &bracket); err != nil {
		logging.Warn(c.logger, "bracket cache decode failed", "error", err)
		return playoffs.Bracket{}, false
	}
	return bracket, true
}

// Set stores the bracket with a short TTL; failures are logged, not fatal.
func (c *BracketCache) Set(ctx context.Context, bracket playoffs.Bracket) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(bracket)
	if err != nil {
		logging.Warn(c.logger, "bracket cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, bracketKey, raw, c.ttl).Err(); err != nil {
		logging.Warn(c.logger, "bracket cache write failed", "error", err)
	}
}

// Invalidate drops the cached view; every bracket mutation calls this.
func (c *BracketCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, bracketKey).Err(); err != nil {
		logging.Warn(c.logger, "bracket cache invalidation failed", "error", err)
	}
}
