package config

// SnapshotConfig controls filesystem snapshots of weekly game data.
type SnapshotConfig struct {
	Dir            string
	RetentionWeeks int
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:            envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionWeeks: intEnvOrDefault(envSnapshotWeeks, defaultSnapshotWeeks),
	}
}
