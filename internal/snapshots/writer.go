package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"league-hub/internal/domain"
)

const defaultRetentionWeeks = 18

// Writer persists week snapshots and the manifest, pruning weeks that
// fall outside the rolling retention window.
type Writer struct {
	basePath       string
	retentionWeeks int
}

// NewWriter constructs a writer rooted at basePath keeping the most
// recent retentionWeeks weeks.
func NewWriter(basePath string, retentionWeeks int) *Writer {
	if retentionWeeks <= 0 {
		retentionWeeks = defaultRetentionWeeks
	}
	return &Writer{
		basePath:       basePath,
		retentionWeeks: retentionWeeks,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteWeekSnapshot writes the snapshot for the given week and prunes
// weeks outside the retention window. Rewriting identical content only
// touches the manifest.
func (w *Writer) WriteWeekSnapshot(week int, snapshot domain.WeekResponse) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if week <= 0 {
		return fmt.Errorf("week must be positive")
	}

	if snapshot.Week == 0 {
		snapshot.Week = week
	}
	sort.Slice(snapshot.Games, func(i, j int) bool {
		return snapshot.Games[i].ID < snapshot.Games[j].ID
	})

	target := WeekSnapshotPath(w.basePath, week)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(week)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(week)
}

func (w *Writer) updateManifest(week int) error {
	m, _ := readManifest(manifestPath(w.basePath), w.retentionWeeks)

	weeks, err := w.listWeeks()
	if err != nil {
		return err
	}
	if !containsWeek(weeks, week) {
		weeks = append(weeks, week)
	}
	kept, err := w.pruneOldSnapshots(weeks)
	if err != nil {
		return err
	}

	m.Weeks.Numbers = kept
	m.Weeks.LastRefreshed = time.Now().UTC()
	m.Retention.Weeks = w.retentionWeeks

	return writeManifest(w.basePath, m)
}

func containsWeek(weeks []int, week int) bool {
	for _, wk := range weeks {
		if wk == week {
			return true
		}
	}
	return false
}

func (w *Writer) listWeeks() ([]int, error) {
	dir := filepath.Join(w.basePath, "weeks")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []int{}, nil
		}
		return nil, err
	}

	var weeks []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		week, ok := parseWeekFilename(e.Name())
		if !ok {
			continue
		}
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks, nil
}

func parseWeekFilename(name string) (int, bool) {
	if !strings.HasPrefix(name, "week-") || !strings.HasSuffix(name, ".json") {
		return 0, false
	}
	week, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "week-"), ".json"))
	if err != nil || week <= 0 {
		return 0, false
	}
	return week, true
}

// pruneOldSnapshots keeps the highest-numbered weeks inside the
// retention window and removes the rest from disk.
func (w *Writer) pruneOldSnapshots(weeks []int) ([]int, error) {
	sort.Ints(weeks)
	if len(weeks) <= w.retentionWeeks {
		return weeks, nil
	}

	cut := len(weeks) - w.retentionWeeks
	for _, old := range weeks[:cut] {
		_ = os.Remove(WeekSnapshotPath(w.basePath, old))
	}
	kept := make([]int, w.retentionWeeks)
	copy(kept, weeks[cut:])
	return kept, nil
}
