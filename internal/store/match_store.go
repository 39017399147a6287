package store

import (
	"context"
	"sort"
	"sync"

	"league-hub/internal/domain/playoffs"
)

// MatchStore is an in-memory playoff match store. It backs tests and
// deployments without a configured database, and enforces the same
// (round, matchNumber) uniqueness the Postgres store does.
type MatchStore struct {
	mu      sync.RWMutex
	matches map[string]playoffs.Match
}

// NewMatchStore constructs an empty MatchStore.
func NewMatchStore() *MatchStore {
	return &MatchStore{
		matches: make(map[string]playoffs.Match),
	}
}

// ListMatches returns every match, ordered by round then match number.
func (s *MatchStore) ListMatches(ctx context.Context) ([]playoffs.Match, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]playoffs.Match, 0, len(s.matches))
	for _, m := range s.matches {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Round != result[j].Round {
			return roundOrder(result[i].Round) < roundOrder(result[j].Round)
		}
		return result[i].MatchNumber < result[j].MatchNumber
	})
	return result, nil
}

// ListByRound returns one round's matches ordered by match number.
func (s *MatchStore) ListByRound(ctx context.Context, round playoffs.Round) ([]playoffs.Match, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []playoffs.Match
	for _, m := range s.matches {
		if m.Round == round {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MatchNumber < result[j].MatchNumber })
	return result, nil
}

// GetMatch retrieves a match by id.
func (s *MatchStore) GetMatch(ctx context.Context, id string) (playoffs.Match, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	if !ok {
		return playoffs.Match{}, playoffs.ErrNotFound
	}
	return m, nil
}

// CreateMatch stores a new match, rejecting (round, matchNumber) collisions.
func (s *MatchStore) CreateMatch(ctx context.Context, match playoffs.Match) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.matches {
		if existing.Round == match.Round && existing.MatchNumber == match.MatchNumber {
			return playoffs.ErrDuplicateMatch
		}
	}
	s.matches[match.ID] = match
	return nil
}

// UpdateMatch merges a partial payload into an existing match.
func (s *MatchStore) UpdateMatch(ctx context.Context, id string, patch playoffs.MatchPatch) (playoffs.Match, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.matches[id]
	if !ok {
		return playoffs.Match{}, playoffs.ErrNotFound
	}
	updated := patch.Apply(existing)
	s.matches[id] = updated
	return updated, nil
}

// DeleteMatch removes a match; deleting an absent id is an error.
func (s *MatchStore) DeleteMatch(ctx context.Context, id string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[id]; !ok {
		return playoffs.ErrNotFound
	}
	delete(s.matches, id)
	return nil
}

func roundOrder(round playoffs.Round) int {
	for i, r := range playoffs.Rounds {
		if r == round {
			return i
		}
	}
	return len(playoffs.Rounds)
}
