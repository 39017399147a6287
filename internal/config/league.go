package config

const (
	envLeagueBaseURL = "LEAGUE_FEED_BASE_URL"
	envLeagueAPIKey  = "LEAGUE_FEED_API_KEY"

	defaultLeagueBaseURL = "https://feed.bffl.example.com/api/v1"
)

// LeagueConfig controls how we talk to the league scoreboard feed.
type LeagueConfig struct {
	BaseURL string
	APIKey  string
}

func loadLeague() LeagueConfig {
	return LeagueConfig{
		BaseURL: envOrDefault(envLeagueBaseURL, defaultLeagueBaseURL),
		APIKey:  envOrDefault(envLeagueAPIKey, ""),
	}
}
