package providers

import (
	"context"

	"league-hub/internal/domain"
)

// LeagueProvider defines how upstream league data is fetched and
// normalized. Games cover the current week's scoreboard; standings are
// the season-to-date table the win-probability model reads.
type LeagueProvider interface {
	FetchGames(ctx context.Context) ([]domain.Game, error)
	FetchStandings(ctx context.Context) ([]domain.Standings, error)
}
