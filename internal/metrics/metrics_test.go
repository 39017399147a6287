package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("bffl", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("bffl", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("bffl"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("bffl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("bffl"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("bffl")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("bffl", 2*time.Second)
	rec.RecordRateLimit("bffl", 0)

	if got := rec.RateLimitHits("bffl"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("bffl"); got != 2*time.Second {
		t.Fatalf("expected retry-after to stick at 2s, got %s", got)
	}
}

func TestRecorderTracksBracketMutations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordBracketMutation("create", nil)
	rec.RecordBracketMutation("create", errors.New("duplicate"))
	rec.RecordBracketMutation("delete", nil)

	attempts, failures := rec.BracketMutations("create")
	if attempts != 2 || failures != 1 {
		t.Fatalf("expected 2 attempts / 1 failure, got %d / %d", attempts, failures)
	}
	attempts, failures = rec.BracketMutations("delete")
	if attempts != 1 || failures != 0 {
		t.Fatalf("expected 1 attempt / 0 failures, got %d / %d", attempts, failures)
	}
	if attempts, _ := rec.BracketMutations("setup"); attempts != 0 {
		t.Fatalf("expected no setup attempts, got %d", attempts)
	}
}

func TestRecorderTracksCacheLookups(t *testing.T) {
	rec := NewRecorder()
	rec.RecordBracketCacheLookup(true)
	rec.RecordBracketCacheLookup(false)
	rec.RecordBracketCacheLookup(true)

	hits, misses := rec.BracketCacheLookups()
	if hits != 2 || misses != 1 {
		t.Fatalf("expected 2 hits / 1 miss, got %d / %d", hits, misses)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("bffl", time.Millisecond, nil)
	rec.RecordRateLimit("bffl", time.Second)
	rec.RecordBracketMutation("create", nil)
	rec.RecordBracketCacheLookup(true)
	rec.RecordHTTPRequest("GET", "/games", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if snap := rec.Snapshot("bffl"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
}

func TestSetupDisabledReturnsNoopRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if shutdown == nil {
		t.Fatal("expected a shutdown func")
	}
}
