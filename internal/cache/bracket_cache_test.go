package cache

import (
	"context"
	"testing"

	"league-hub/internal/domain/playoffs"
)

func TestNilClientIsPassThrough(t *testing.T) {
	ctx := context.Background()
	c := NewBracketCache(nil, nil)

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss with no redis client")
	}
	c.Set(ctx, playoffs.Bracket{})
	c.Invalidate(ctx)

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss after pass-through set")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *BracketCache
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss on nil cache")
	}
	c.Set(ctx, playoffs.Bracket{})
	c.Invalidate(ctx)
}
