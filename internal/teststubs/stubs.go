// Package teststubs holds shared test doubles for the provider and
// snapshot contracts.
package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	"league-hub/internal/domain"
)

// StubProvider is a test double for providers.LeagueProvider.
type StubProvider struct {
	Games     []domain.Game
	Standings []domain.Standings
	Err       error
	Calls     atomic.Int32
	Notify    chan struct{}
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// FetchStandings returns configured standings and error while tracking calls.
func (s *StubProvider) FetchStandings(ctx context.Context) ([]domain.Standings, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Standings, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Snapshots map[int]domain.WeekResponse
	LoadErr   error
}

// LoadWeek returns the snapshot for the given week if present.
func (s *StubSnapshotStore) LoadWeek(week int) (domain.WeekResponse, error) {
	if s.LoadErr != nil {
		return domain.WeekResponse{}, s.LoadErr
	}
	resp, ok := s.Snapshots[week]
	if !ok {
		return domain.WeekResponse{}, errors.New("snapshot not found")
	}
	return resp, nil
}

// Weeks lists the weeks with a stored snapshot.
func (s *StubSnapshotStore) Weeks() ([]int, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	weeks := make([]int, 0, len(s.Snapshots))
	for w := range s.Snapshots {
		weeks = append(weeks, w)
	}
	return weeks, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[int]domain.WeekResponse
	Err     error
}

// WriteWeekSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteWeekSnapshot(week int, snapshot domain.WeekResponse) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[int]domain.WeekResponse)
	}
	w.Written[week] = snapshot
	return nil
}
