package snapshots

import (
	"fmt"
	"path/filepath"
)

// WeekSnapshotPath builds the path to a week snapshot for a given week number.
func WeekSnapshotPath(basePath string, week int) string {
	return filepath.Join(basePath, "weeks", fmt.Sprintf("week-%d.json", week))
}
