package probability

import (
	"testing"

	"league-hub/internal/domain"
)

func intPtr(v int) *int { return &v }

func scheduledGame(team1, team2 string) domain.Game {
	return domain.Game{
		ID:      "g1",
		Week:    5,
		Team1:   team1,
		Team2:   team2,
		Quarter: domain.QuarterScheduled,
	}
}

func standingsWith(pd1, pd2 int) []domain.Standings {
	return []domain.Standings{
		{Team: "Falcons", PointDifferential: pd1},
		{Team: "Bears", PointDifferential: pd2},
	}
}

func TestEvenTeamsSplitFiftyFifty(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	standings := standingsWith(25, 25)

	if got := WinProbability(game, Team1, standings); got != 50 {
		t.Fatalf("expected 50 for team1, got %d", got)
	}
	if got := WinProbability(game, Team2, standings); got != 50 {
		t.Fatalf("expected 50 for team2, got %d", got)
	}
}

func TestScheduledGameUsesOnlyPointDifferential(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	standings := standingsWith(40, 0)

	if got := WinProbability(game, Team1, standings); got != 52 {
		t.Fatalf("expected 52, got %d", got)
	}
	if got := WinProbability(game, Team2, standings); got != 48 {
		t.Fatalf("expected 48, got %d", got)
	}
}

func TestLiveGameBlendsScoreAndQuarter(t *testing.T) {
	// PD edge of 40 gives a base of 52; an 11-point lead in Q3
	// contributes (11/3)*0.6 = 2.2, so 54.2 rounds to 54.
	game := scheduledGame("Falcons", "Bears")
	game.IsLive = true
	game.Quarter = domain.QuarterQ3
	game.Team1Score = intPtr(21)
	game.Team2Score = intPtr(10)
	standings := standingsWith(40, 0)

	if got := WinProbability(game, Team1, standings); got != 54 {
		t.Fatalf("expected 54, got %d", got)
	}
	if got := WinProbability(game, Team2, standings); got != 46 {
		t.Fatalf("expected 46, got %d", got)
	}
}

func TestSidesAlwaysSumToOneHundred(t *testing.T) {
	games := []domain.Game{
		scheduledGame("Falcons", "Bears"),
		{Team1: "Falcons", Team2: "Bears", IsLive: true, Quarter: domain.QuarterQ4, Team1Score: intPtr(35), Team2Score: intPtr(3)},
		{Team1: "Falcons", Team2: "Bears", IsLive: true, Quarter: "OT", Team1Score: intPtr(14), Team2Score: intPtr(17)},
	}
	for _, pd := range []int{-900, -100, -37, 0, 19, 250, 1200} {
		standings := standingsWith(pd, 0)
		for _, game := range games {
			p1 := WinProbability(game, Team1, standings)
			p2 := WinProbability(game, Team2, standings)
			if p1+p2 != 100 {
				t.Fatalf("pd=%d game=%+v: %d + %d != 100", pd, game, p1, p2)
			}
		}
	}
}

func TestProbabilityStaysWithinBounds(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	for _, pd := range []int{-5000, -1000, 0, 1000, 5000} {
		standings := standingsWith(pd, 0)
		for _, side := range []Side{Team1, Team2} {
			got := WinProbability(game, side, standings)
			if got < 1 || got > 99 {
				t.Fatalf("pd=%d side=%s: probability %d out of [1, 99]", pd, side, got)
			}
		}
	}
}

func TestProbabilityMonotonicInPointDifferential(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	prev := 0
	for i, pd := range []int{-2000, -400, -40, 0, 40, 400, 2000} {
		got := WinProbability(game, Team1, standingsWith(pd, 0))
		if i > 0 && got < prev {
			t.Fatalf("probability decreased from %d to %d at pd=%d", prev, got, pd)
		}
		prev = got
	}
}

func TestLaterQuarterAmplifiesLead(t *testing.T) {
	base := scheduledGame("Falcons", "Bears")
	base.IsLive = true
	base.Team1Score = intPtr(24)
	base.Team2Score = intPtr(10)
	standings := standingsWith(0, 0)

	q1 := base
	q1.Quarter = domain.QuarterQ1
	q4 := base
	q4.Quarter = domain.QuarterQ4

	early := WinProbability(q1, Team1, standings)
	late := WinProbability(q4, Team1, standings)
	if late < early {
		t.Fatalf("expected Q4 probability %d >= Q1 probability %d", late, early)
	}
}

func TestUnknownQuarterUsesMiddleWeight(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	game.IsLive = true
	game.Quarter = "OT"
	game.Team1Score = intPtr(30)
	game.Team2Score = intPtr(0)
	standings := standingsWith(0, 0)

	// (30/3)*0.5 = 5 on a base of 50.
	if got := WinProbability(game, Team1, standings); got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}
}

func TestMissingStandingsDefaultToZero(t *testing.T) {
	game := scheduledGame("Falcons", "Expansion Team")
	standings := []domain.Standings{{Team: "Falcons", PointDifferential: 100}}

	if got := WinProbability(game, Team1, standings); got != 55 {
		t.Fatalf("expected 55 with absent opponent treated as 0, got %d", got)
	}
	if got := WinProbability(game, Team1, nil); got != 50 {
		t.Fatalf("expected 50 with no standings at all, got %d", got)
	}
}

func TestLiveGameWithMissingScoresDoesNotPanic(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	game.IsLive = true
	game.Quarter = domain.QuarterQ2

	if got := WinProbability(game, Team1, standingsWith(0, 0)); got != 50 {
		t.Fatalf("expected 50 when live scores are absent, got %d", got)
	}
}

func TestScheduledQuarterIgnoresScoresEvenIfLive(t *testing.T) {
	game := scheduledGame("Falcons", "Bears")
	game.IsLive = true
	game.Team1Score = intPtr(7)
	game.Team2Score = intPtr(0)

	if got := WinProbability(game, Team1, standingsWith(0, 0)); got != 50 {
		t.Fatalf("expected the live branch to be skipped for Scheduled quarter, got %d", got)
	}
}
