package bffl

import (
	"fmt"
	"strings"

	"league-hub/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	isLive, isFinal := mapStatus(g.Status)
	return domain.Game{
		ID:         fmt.Sprintf("%s-%d", providerName, g.ID),
		Week:       g.Week,
		Team1:      g.Team1,
		Team2:      g.Team2,
		Team1Score: g.Team1Score,
		Team2Score: g.Team2Score,
		IsLive:     isLive,
		IsFinal:    isFinal,
		Quarter:    mapQuarter(g.Quarter, isLive, isFinal),
	}
}

func mapStanding(s standingResponse) domain.Standings {
	return domain.Standings{
		Team:              s.Team,
		Wins:              s.Wins,
		Losses:            s.Losses,
		PointDifferential: s.PointsFor - s.PointsAgainst,
	}
}

// mapStatus keeps the live/final flags mutually exclusive even when the
// feed reports something odd.
func mapStatus(status string) (isLive, isFinal bool) {
	switch strings.ToLower(status) {
	case "final", "ended":
		return false, true
	case "live", "in progress", "halftime":
		return true, false
	default:
		return false, false
	}
}

// mapQuarter passes unrecognized labels through; the estimator tolerates
// them with a middle progress weight.
func mapQuarter(quarter string, isLive, isFinal bool) string {
	quarter = strings.TrimSpace(quarter)
	if quarter != "" {
		return quarter
	}
	if isLive || isFinal {
		return domain.QuarterQ4
	}
	return domain.QuarterScheduled
}
