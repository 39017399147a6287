package domain

// Quarter labels as reported by the upstream scoreboard feed.
// Unknown values are tolerated and passed through untouched.
const (
	QuarterScheduled = "Scheduled"
	QuarterQ1        = "Q1"
	QuarterQ2        = "Q2"
	QuarterQ3        = "Q3"
	QuarterQ4        = "Q4"
)

// Game is the canonical game shape exposed by the service.
// Scores are nil until play has started; isLive and isFinal are
// mutually exclusive upstream.
type Game struct {
	ID         string `json:"id"`
	Week       int    `json:"week"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Team1Score *int   `json:"team1Score"`
	Team2Score *int   `json:"team2Score"`
	IsLive     bool   `json:"isLive"`
	IsFinal    bool   `json:"isFinal"`
	Quarter    string `json:"quarter"`
}

// Started reports whether play has begun (live or final).
func (g Game) Started() bool {
	return g.IsLive || g.IsFinal
}

// Standings is one team's season-to-date record, keyed by exact team name.
type Standings struct {
	Team              string `json:"team"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	PointDifferential int    `json:"pointDifferential"`
}

// WeekResponse is the payload returned by /games.
type WeekResponse struct {
	Week  int    `json:"week"`
	Games []Game `json:"games"`
}

// WinProbability is a point-in-time estimate for one game. The two
// percentages always sum to 100.
type WinProbability struct {
	GameID       string `json:"gameId"`
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	Team1Percent int    `json:"team1Percent"`
	Team2Percent int    `json:"team2Percent"`
}

// NewWeekResponse builds a WeekResponse payload.
func NewWeekResponse(week int, games []Game) WeekResponse {
	return WeekResponse{
		Week:  week,
		Games: games,
	}
}
