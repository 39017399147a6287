package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "league-hub/internal/http"
	"league-hub/internal/http/handlers"
)

type stubRefresher struct {
	calls int
	err   error
}

func (s *stubRefresher) RefreshNow(ctx context.Context) error {
	s.calls++
	return s.err
}

func newAdminRouter(refresher handlers.Refresher) http.Handler {
	admin := handlers.NewAdminHandler(refresher, testAdminToken, nil)
	games := handlers.NewGamesHandler(nil, nil, nil, nil, nil)
	playoffs := handlers.NewPlayoffsHandler(nil, testAdminToken, nil)
	return httpapi.NewRouter(games, playoffs, admin, httpapi.RouterConfig{})
}

func TestRefreshSnapshotsRequiresToken(t *testing.T) {
	refresher := &stubRefresher{}
	router := newAdminRouter(refresher)

	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if refresher.calls != 0 {
		t.Fatalf("expected no refresh calls, got %d", refresher.calls)
	}
}

func TestRefreshSnapshotsTriggersRefresh(t *testing.T) {
	refresher := &stubRefresher{}
	router := newAdminRouter(refresher)

	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if refresher.calls != 1 {
		t.Fatalf("expected 1 refresh call, got %d", refresher.calls)
	}
}

func TestRefreshSnapshotsUpstreamFailure(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("feed down")}
	router := newAdminRouter(refresher)

	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
