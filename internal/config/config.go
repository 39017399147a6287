package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	CurrentWeek  int
	AdminToken   string
	PostgresDSN  string
	RedisURL     string
	CORSOrigins  []string
	League       LeagueConfig
	Snapshots    SnapshotConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		CurrentWeek:  intEnvOrDefault(envCurrentWeek, defaultCurrentWeek),
		AdminToken:   envOrDefault(envAdminToken, ""),
		PostgresDSN:  envOrDefault(envPostgresDSN, ""),
		RedisURL:     envOrDefault(envRedisURL, ""),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, []string{"*"}),
		League:       loadLeague(),
		Snapshots:    loadSnapshots(),
		Metrics:      loadMetrics(),
	}
}
