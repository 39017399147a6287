// Package scores exposes the read side of the live scoreboard: current
// games, standings, and per-game win probabilities.
package scores

import (
	"league-hub/internal/app/probability"
	"league-hub/internal/domain"
)

// Store defines the contract for retrieving the current scoreboard state.
type Store interface {
	ListGames() []domain.Game
	GetGame(id string) (domain.Game, bool)
	ListStandings() []domain.Standings
	SetGames(games []domain.Game)
	SetStandings(standings []domain.Standings)
}

// Service coordinates scoreboard reads using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Games returns the current set of games.
func (s *Service) Games() []domain.Game {
	return s.store.ListGames()
}

// GamesByWeek returns the games that belong to the given week.
func (s *Service) GamesByWeek(week int) []domain.Game {
	all := s.store.ListGames()
	result := make([]domain.Game, 0, len(all))
	for _, g := range all {
		if g.Week == week {
			result = append(result, g)
		}
	}
	return result
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domain.Game, bool) {
	return s.store.GetGame(id)
}

// Standings returns the current standings table.
func (s *Service) Standings() []domain.Standings {
	return s.store.ListStandings()
}

// StandingsForTeam returns the standings row for the named team.
func (s *Service) StandingsForTeam(team string) (domain.Standings, bool) {
	for _, row := range s.store.ListStandings() {
		if row.Team == team {
			return row, true
		}
	}
	return domain.Standings{}, false
}

// Probability estimates each side's chance of winning the given game.
func (s *Service) Probability(id string) (domain.WinProbability, bool) {
	game, ok := s.store.GetGame(id)
	if !ok {
		return domain.WinProbability{}, false
	}

	standings := s.store.ListStandings()
	return domain.WinProbability{
		GameID:       game.ID,
		Team1:        game.Team1,
		Team2:        game.Team2,
		Team1Percent: probability.WinProbability(game, probability.Team1, standings),
		Team2Percent: probability.WinProbability(game, probability.Team2, standings),
	}, true
}

// ReplaceGames swaps the in-memory games with a new snapshot.
func (s *Service) ReplaceGames(games []domain.Game) {
	s.store.SetGames(games)
}

// ReplaceStandings swaps the in-memory standings with a new snapshot.
func (s *Service) ReplaceStandings(standings []domain.Standings) {
	s.store.SetStandings(standings)
}
