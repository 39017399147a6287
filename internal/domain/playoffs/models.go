package playoffs

// Round identifies one stage of the playoff tournament.
type Round string

const (
	RoundPlayIn     Round = "play_in"
	RoundWildcard   Round = "wildcard"
	RoundDivisional Round = "divisional"
	RoundConference Round = "conference"
	RoundSuperBowl  Round = "super_bowl"
)

// Rounds lists every round in bracket order.
var Rounds = []Round{RoundPlayIn, RoundWildcard, RoundDivisional, RoundConference, RoundSuperBowl}

// Valid reports whether the round is one of the five known stages.
func (r Round) Valid() bool {
	switch r {
	case RoundPlayIn, RoundWildcard, RoundDivisional, RoundConference, RoundSuperBowl:
		return true
	}
	return false
}

// Match is one playoff matchup. Team slots and scores stay nil until an
// administrator fills them in; Winner is authoritative only when set
// explicitly, regardless of scores.
type Match struct {
	ID          string  `json:"id"`
	Round       Round   `json:"round"`
	MatchNumber int     `json:"matchNumber"`
	Seed1       int     `json:"seed1"`
	Seed2       int     `json:"seed2"`
	Team1       *string `json:"team1"`
	Team2       *string `json:"team2"`
	Team1Score  *int    `json:"team1Score"`
	Team2Score  *int    `json:"team2Score"`
	Winner      *string `json:"winner"`
}

// Leader returns the higher-scoring team name for display purposes.
// It is not the authoritative winner; that is the Winner field.
func (m Match) Leader() (string, bool) {
	if m.Team1Score == nil || m.Team2Score == nil || m.Team1 == nil || m.Team2 == nil {
		return "", false
	}
	switch {
	case *m.Team1Score > *m.Team2Score:
		return *m.Team1, true
	case *m.Team2Score > *m.Team1Score:
		return *m.Team2, true
	}
	return "", false
}

// Bracket groups matches into the five round buckets, each ordered by
// match number. An empty bucket means the round is not configured yet.
type Bracket struct {
	PlayIn     []Match `json:"play_in"`
	Wildcard   []Match `json:"wildcard"`
	Divisional []Match `json:"divisional"`
	Conference []Match `json:"conference"`
	SuperBowl  []Match `json:"super_bowl"`
}

// Configured reports whether the play-in round has been seeded; callers
// use this to decide between the bracket view and a setup affordance.
func (b Bracket) Configured() bool {
	return len(b.PlayIn) > 0
}
