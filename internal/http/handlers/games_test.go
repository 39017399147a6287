package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"league-hub/internal/app/scores"
	"league-hub/internal/domain"
	httpapi "league-hub/internal/http"
	"league-hub/internal/http/handlers"
	"league-hub/internal/poller"
	"league-hub/internal/snapshots"
	"league-hub/internal/store"
)

func intPtr(v int) *int { return &v }

type stubSnapshots struct {
	weeks map[int]domain.WeekResponse
}

func (s *stubSnapshots) LoadWeek(week int) (domain.WeekResponse, error) {
	if snap, ok := s.weeks[week]; ok {
		return snap, nil
	}
	return domain.WeekResponse{}, errors.New("not found")
}

func (s *stubSnapshots) Weeks() ([]int, error) {
	var out []int
	for w := range s.weeks {
		out = append(out, w)
	}
	return out, nil
}

func newGamesRouter(t *testing.T, snaps *stubSnapshots, statusFn func() poller.Status) http.Handler {
	t.Helper()

	st := store.NewMemoryStore()
	st.SetGames([]domain.Game{
		{ID: "g1", Week: 12, Team1: "Falcons", Team2: "Bears", Team1Score: intPtr(21), Team2Score: intPtr(10), IsLive: true, Quarter: domain.QuarterQ3},
		{ID: "g2", Week: 12, Team1: "Texans", Team2: "Lions", Quarter: domain.QuarterScheduled},
	})
	st.SetStandings([]domain.Standings{
		{Team: "Falcons", Wins: 8, Losses: 2, PointDifferential: 84},
		{Team: "Bears", Wins: 6, Losses: 4, PointDifferential: 21},
	})

	var snapStore snapshots.Store
	if snaps != nil {
		snapStore = snaps
	}

	svc := scores.NewService(st)
	games := handlers.NewGamesHandler(svc, snapStore, nil, func() int { return 12 }, statusFn)
	playoffs := handlers.NewPlayoffsHandler(nil, "", nil)
	return httpapi.NewRouter(games, playoffs, nil, httpapi.RouterConfig{})
}

func TestGamesReturnsCurrentWeek(t *testing.T) {
	router := newGamesRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp domain.WeekResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Week != 12 {
		t.Fatalf("expected week 12, got %d", resp.Week)
	}
	if len(resp.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp.Games))
	}
}

func TestGamesServesArchivedWeekFromSnapshots(t *testing.T) {
	snaps := &stubSnapshots{weeks: map[int]domain.WeekResponse{
		11: {Week: 11, Games: []domain.Game{{ID: "old-1", Week: 11, Team1: "Rams", Team2: "Jets", IsFinal: true}}},
	}}
	router := newGamesRouter(t, snaps, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games?week=11", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp domain.WeekResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Week != 11 || len(resp.Games) != 1 || resp.Games[0].ID != "old-1" {
		t.Fatalf("unexpected snapshot payload: %+v", resp)
	}
}

func TestGamesUnknownWeekIs404(t *testing.T) {
	router := newGamesRouter(t, &stubSnapshots{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games?week=3", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGamesInvalidWeekIs400(t *testing.T) {
	router := newGamesRouter(t, nil, nil)

	for _, week := range []string{"abc", "-1", "0"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games?week="+week, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("week %q: expected 400, got %d", week, rec.Code)
		}
	}
}

func TestGameByID(t *testing.T) {
	router := newGamesRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/g1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var game domain.Game
	if err := json.Unmarshal(rec.Body.Bytes(), &game); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if game.Team1 != "Falcons" {
		t.Fatalf("unexpected game: %+v", game)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProbabilityEndpoint(t *testing.T) {
	router := newGamesRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/g1/probability", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var prob domain.WinProbability
	if err := json.Unmarshal(rec.Body.Bytes(), &prob); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if prob.Team1Percent+prob.Team2Percent != 100 {
		t.Fatalf("probabilities sum to %d", prob.Team1Percent+prob.Team2Percent)
	}
	if prob.Team1Percent <= 50 {
		t.Fatalf("expected the leading live team above 50, got %d", prob.Team1Percent)
	}
}

func TestStandingsEndpoint(t *testing.T) {
	router := newGamesRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/standings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var standings []domain.Standings
	if err := json.Unmarshal(rec.Body.Bytes(), &standings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(standings))
	}
}

func TestHealthAndReady(t *testing.T) {
	notReady := func() poller.Status { return poller.Status{} }
	router := newGamesRouter(t, nil, notReady)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from /ready before first success, got %d", rec.Code)
	}
}
