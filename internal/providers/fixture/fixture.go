// Package fixture provides a deterministic league feed useful for local
// development and bootstrapping without upstream credentials.
package fixture

import (
	"context"

	"league-hub/internal/domain"
)

// Provider returns a static set of games and standings.
type Provider struct {
	week int
}

// New creates a fixture provider reporting the given week.
func New(week int) *Provider {
	if week <= 0 {
		week = 1
	}
	return &Provider{week: week}
}

func intPtr(v int) *int { return &v }

// FetchGames returns a deterministic scoreboard with one live, one final
// and one scheduled game.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	_ = ctx

	return []domain.Game{
		{
			ID:         "fixture-1",
			Week:       p.week,
			Team1:      "Falcons",
			Team2:      "Bears",
			Team1Score: intPtr(21),
			Team2Score: intPtr(10),
			IsLive:     true,
			Quarter:    domain.QuarterQ3,
		},
		{
			ID:         "fixture-2",
			Week:       p.week,
			Team1:      "Texans",
			Team2:      "Lions",
			Team1Score: intPtr(17),
			Team2Score: intPtr(27),
			IsFinal:    true,
			Quarter:    domain.QuarterQ4,
		},
		{
			ID:      "fixture-3",
			Week:    p.week,
			Team1:   "Packers",
			Team2:   "Giants",
			Quarter: domain.QuarterScheduled,
		},
	}, nil
}

// FetchStandings returns a deterministic standings table.
func (p *Provider) FetchStandings(ctx context.Context) ([]domain.Standings, error) {
	_ = ctx

	return []domain.Standings{
		{Team: "Falcons", Wins: 8, Losses: 2, PointDifferential: 84},
		{Team: "Bears", Wins: 6, Losses: 4, PointDifferential: 21},
		{Team: "Texans", Wins: 5, Losses: 5, PointDifferential: -12},
		{Team: "Lions", Wins: 7, Losses: 3, PointDifferential: 44},
		{Team: "Packers", Wins: 4, Losses: 6, PointDifferential: -30},
		{Team: "Giants", Wins: 3, Losses: 7, PointDifferential: -58},
	}, nil
}
