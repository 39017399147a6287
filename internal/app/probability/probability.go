// Package probability estimates the chance that one side of a game wins,
// blending season point differential with the live score and quarter.
// The output is advisory display data: the estimator never fails and
// treats missing inputs as neutral values.
package probability

import (
	"math"

	"league-hub/internal/domain"
)

// Side selects which team's probability is requested.
type Side string

const (
	Team1 Side = "team1"
	Team2 Side = "team2"
)

// quarterProgress weights how much the live score matters as the game
// advances. Unrecognized quarter labels fall back to 0.5.
var quarterProgress = map[string]float64{
	domain.QuarterQ1: 0.25,
	domain.QuarterQ2: 0.4,
	domain.QuarterQ3: 0.6,
	domain.QuarterQ4: 0.8,
}

// WinProbability returns an integer percentage in [1, 99] for the given
// side. Team2's value is defined as 100 minus team1's rounded value, so
// the two sides always sum to exactly 100.
func WinProbability(game domain.Game, side Side, standings []domain.Standings) int {
	pd1 := pointDifferential(standings, game.Team1)
	pd2 := pointDifferential(standings, game.Team2)

	// Each 20 points of season point-differential edge moves the base
	// probability one point in team1's favor.
	probability := 50 + float64(pd1-pd2)/20

	if game.IsLive && game.Quarter != "" && game.Quarter != domain.QuarterScheduled {
		scoreDifference := scoreOrZero(game.Team1Score) - scoreOrZero(game.Team2Score)

		progress, ok := quarterProgress[game.Quarter]
		if !ok {
			progress = 0.5
		}

		// Each 3 points of live lead is worth up to one point, scaled
		// by how far the game has progressed.
		probability += float64(scoreDifference) / 3 * progress
	}

	// Clamp the real value first, then round.
	clamped := math.Min(99, math.Max(1, probability))
	team1Probability := int(math.Round(clamped))

	if side == Team2 {
		return 100 - team1Probability
	}
	return team1Probability
}

func pointDifferential(standings []domain.Standings, team string) int {
	for _, s := range standings {
		if s.Team == team {
			return s.PointDifferential
		}
	}
	return 0
}

// scoreOrZero guards against upstream emitting a live game without
// scores; the estimator degrades to 0 rather than failing.
func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
