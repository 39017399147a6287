package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envCurrentWeek   = "CURRENT_WEEK"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken    = "ADMIN_TOKEN"
	envPostgresDSN   = "POSTGRES_DSN"
	envRedisURL      = "REDIS_URL"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotWeeks = "SNAPSHOT_RETENTION_WEEKS"
	envCORSOrigins   = "CORS_ALLOWED_ORIGINS"

	defaultPort = "4000"
	// Conservative default poll interval; the scoreboard feed updates about once a minute.
	defaultPollInterval  = 30 * Duration(time.Second)
	defaultProvider      = "fixture"
	defaultCurrentWeek   = 1
	defaultMetricsPort   = "9090"
	defaultSnapshotDir   = "data/snapshots"
	defaultSnapshotWeeks = 18
)
