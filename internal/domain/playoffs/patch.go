package playoffs

import "encoding/json"

// OptionalString distinguishes an omitted JSON field from an explicit null.
// Set is true when the field appeared in the payload; a null value clears
// the target field.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON marks the field as present and keeps nil for JSON null.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// OptionalInt distinguishes an omitted JSON field from an explicit null.
type OptionalInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON marks the field as present and keeps nil for JSON null.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// MatchPatch carries a partial update for a match. Fields left unset are
// not touched; fields set to null clear the stored value.
type MatchPatch struct {
	Team1      OptionalString `json:"team1"`
	Team2      OptionalString `json:"team2"`
	Team1Score OptionalInt    `json:"team1Score"`
	Team2Score OptionalInt    `json:"team2Score"`
	Winner     OptionalString `json:"winner"`
}

// Empty reports whether the patch carries no fields at all.
func (p MatchPatch) Empty() bool {
	return !p.Team1.Set && !p.Team2.Set && !p.Team1Score.Set && !p.Team2Score.Set && !p.Winner.Set
}

// Apply merges the patch into a copy of the match and returns it.
func (p MatchPatch) Apply(m Match) Match {
	if p.Team1.Set {
		m.Team1 = p.Team1.Value
	}
	if p.Team2.Set {
		m.Team2 = p.Team2.Value
	}
	if p.Team1Score.Set {
		m.Team1Score = p.Team1Score.Value
	}
	if p.Team2Score.Set {
		m.Team2Score = p.Team2Score.Value
	}
	if p.Winner.Set {
		m.Winner = p.Winner.Value
	}
	return m
}
