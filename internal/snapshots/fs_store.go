// Package snapshots persists per-week scoreboard snapshots to the
// filesystem so past weeks stay browsable after the feed moves on.
package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"league-hub/internal/domain"
)

// Store defines how week snapshots are loaded.
type Store interface {
	LoadWeek(week int) (domain.WeekResponse, error)
	Weeks() ([]int, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadWeek reads the snapshot for the given week from disk. Files live at
// {basePath}/weeks/week-{n}.json with a WeekResponse payload.
func (s *FSStore) LoadWeek(week int) (domain.WeekResponse, error) {
	if s == nil {
		return domain.WeekResponse{}, errors.New("snapshot store not configured")
	}
	if week <= 0 {
		return domain.WeekResponse{}, errors.New("week must be positive")
	}

	f, err := os.Open(WeekSnapshotPath(s.basePath, week))
	if err != nil {
		return domain.WeekResponse{}, err
	}
	defer f.Close()

	var payload domain.WeekResponse
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.WeekResponse{}, err
	}
	if payload.Week == 0 {
		payload.Week = week
	}
	return payload, nil
}

// Weeks lists the week numbers with a snapshot on disk, per the manifest.
func (s *FSStore) Weeks() ([]int, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(manifestPath(s.basePath), 0)
	if err != nil {
		if os.IsNotExist(err) {
			return []int{}, nil
		}
		return nil, err
	}
	return m.Weeks.Numbers, nil
}
