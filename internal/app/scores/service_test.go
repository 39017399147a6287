package scores

import (
	"testing"

	"league-hub/internal/domain"
	"league-hub/internal/store"
)

func intPtr(v int) *int { return &v }

func seededService() *Service {
	st := store.NewMemoryStore()
	st.SetGames([]domain.Game{
		{ID: "g1", Week: 11, Team1: "Falcons", Team2: "Bears", Team1Score: intPtr(21), Team2Score: intPtr(10), IsLive: true, Quarter: domain.QuarterQ3},
		{ID: "g2", Week: 11, Team1: "Texans", Team2: "Lions", Quarter: domain.QuarterScheduled},
		{ID: "g3", Week: 12, Team1: "Packers", Team2: "Giants", Quarter: domain.QuarterScheduled},
	})
	st.SetStandings([]domain.Standings{
		{Team: "Falcons", Wins: 8, Losses: 2, PointDifferential: 84},
		{Team: "Bears", Wins: 6, Losses: 4, PointDifferential: 21},
	})
	return NewService(st)
}

func TestGamesByWeekFilters(t *testing.T) {
	svc := seededService()

	week11 := svc.GamesByWeek(11)
	if len(week11) != 2 {
		t.Fatalf("expected 2 games in week 11, got %d", len(week11))
	}
	for _, g := range week11 {
		if g.Week != 11 {
			t.Fatalf("unexpected week %d for %s", g.Week, g.ID)
		}
	}

	if got := svc.GamesByWeek(17); len(got) != 0 {
		t.Fatalf("expected no games in week 17, got %d", len(got))
	}
}

func TestGameByID(t *testing.T) {
	svc := seededService()

	g, ok := svc.GameByID("g2")
	if !ok || g.Team1 != "Texans" {
		t.Fatalf("unexpected lookup result: %+v ok=%v", g, ok)
	}
	if _, ok := svc.GameByID("missing"); ok {
		t.Fatal("expected missing game lookup to fail")
	}
}

func TestStandingsForTeam(t *testing.T) {
	svc := seededService()

	row, ok := svc.StandingsForTeam("Bears")
	if !ok || row.Wins != 6 || row.PointDifferential != 21 {
		t.Fatalf("unexpected standings row: %+v ok=%v", row, ok)
	}
	if _, ok := svc.StandingsForTeam("Raiders"); ok {
		t.Fatal("expected unknown team lookup to fail")
	}
}

func TestProbabilitySumsToHundred(t *testing.T) {
	svc := seededService()

	prob, ok := svc.Probability("g1")
	if !ok {
		t.Fatal("expected probability for known game")
	}
	if prob.Team1Percent+prob.Team2Percent != 100 {
		t.Fatalf("probabilities sum to %d, want 100", prob.Team1Percent+prob.Team2Percent)
	}
	if prob.Team1Percent <= 50 {
		t.Fatalf("expected leading team above 50, got %d", prob.Team1Percent)
	}

	if _, ok := svc.Probability("missing"); ok {
		t.Fatal("expected missing game probability to fail")
	}
}

func TestReplaceGamesSwapsSnapshot(t *testing.T) {
	svc := seededService()

	svc.ReplaceGames([]domain.Game{{ID: "g9", Week: 13, Team1: "Rams", Team2: "Jets"}})
	games := svc.Games()
	if len(games) != 1 || games[0].ID != "g9" {
		t.Fatalf("expected replaced snapshot, got %+v", games)
	}

	svc.ReplaceStandings(nil)
	if got := svc.Standings(); len(got) != 0 {
		t.Fatalf("expected empty standings, got %d", len(got))
	}
}
