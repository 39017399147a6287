package bffl

type gamesResponse struct {
	Data []gameResponse `json:"data"`
}

type gameResponse struct {
	ID         int    `json:"id"`
	Week       int    `json:"week"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Team1Score *int   `json:"team1_score"`
	Team2Score *int   `json:"team2_score"`
	Status     string `json:"status"`
	Quarter    string `json:"quarter"`
}

type standingsResponse struct {
	Data []standingResponse `json:"data"`
}

type standingResponse struct {
	Team          string `json:"team"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}
