// Package bracket is the playoff progression engine: it owns the playoff
// match collection, round-scoped views, and the admin-gated mutations.
package bracket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"league-hub/internal/auth"
	"league-hub/internal/domain/playoffs"
	"league-hub/internal/logging"
	"league-hub/internal/metrics"
)

// bracketSize is the only layout the league runs: a 12-team bracket whose
// play-in round pairs seed1=12-i against seed2=5+i for i in 1..4.
const (
	bracketSize    = 12
	playInMatches  = 4
	playInSeedBase = 5
)

// Store persists playoff matches. Implementations must keep
// (round, matchNumber) unique and report collisions as
// playoffs.ErrDuplicateMatch so a lost seeding race degrades to a
// visible failure instead of a double-seeded bracket.
type Store interface {
	ListMatches(ctx context.Context) ([]playoffs.Match, error)
	ListByRound(ctx context.Context, round playoffs.Round) ([]playoffs.Match, error)
	GetMatch(ctx context.Context, id string) (playoffs.Match, error)
	CreateMatch(ctx context.Context, match playoffs.Match) error
	UpdateMatch(ctx context.Context, id string, patch playoffs.MatchPatch) (playoffs.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

// ViewCache caches the assembled bracket view between mutations.
type ViewCache interface {
	Get(ctx context.Context) (playoffs.Bracket, bool)
	Set(ctx context.Context, bracket playoffs.Bracket)
	Invalidate(ctx context.Context)
}

// Service coordinates bracket reads and admin mutations over a Store.
type Service struct {
	store   Store
	cache   ViewCache
	logger  *slog.Logger
	metrics *metrics.Recorder
	newID   func() string
}

// NewService constructs a Service. Cache, logger, and metrics may be nil.
func NewService(store Store, cache ViewCache, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		logger:  logger,
		metrics: recorder,
		newID:   uuid.NewString,
	}
}

// ListByRound returns one round's matches ordered by match number. An
// unknown round or an unconfigured round yields an empty slice.
func (s *Service) ListByRound(ctx context.Context, round playoffs.Round) ([]playoffs.Match, error) {
	if !round.Valid() {
		return []playoffs.Match{}, nil
	}
	matches, err := s.store.ListByRound(ctx, round)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []playoffs.Match{}
	}
	return matches, nil
}

// Bracket assembles the five round buckets for rendering, serving from
// the view cache when it is warm.
func (s *Service) Bracket(ctx context.Context) (playoffs.Bracket, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			s.metrics.RecordBracketCacheLookup(true)
			return cached, nil
		}
		s.metrics.RecordBracketCacheLookup(false)
	}

	var bracket playoffs.Bracket
	for _, round := range playoffs.Rounds {
		matches, err := s.ListByRound(ctx, round)
		if err != nil {
			return playoffs.Bracket{}, err
		}
		switch round {
		case playoffs.RoundPlayIn:
			bracket.PlayIn = matches
		case playoffs.RoundWildcard:
			bracket.Wildcard = matches
		case playoffs.RoundDivisional:
			bracket.Divisional = matches
		case playoffs.RoundConference:
			bracket.Conference = matches
		case playoffs.RoundSuperBowl:
			bracket.SuperBowl = matches
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, bracket)
	}
	return bracket, nil
}

// Create adds a match with empty team slots and no scores.
func (s *Service) Create(ctx context.Context, actor auth.Actor, round playoffs.Round, matchNumber, seed1, seed2 int) (playoffs.Match, error) {
	if !actor.Admin {
		s.metrics.RecordBracketMutation("create", playoffs.ErrPermissionDenied)
		return playoffs.Match{}, playoffs.ErrPermissionDenied
	}
	if !round.Valid() {
		return playoffs.Match{}, fmt.Errorf("unknown round %q", round)
	}

	match := playoffs.Match{
		ID:          s.newID(),
		Round:       round,
		MatchNumber: matchNumber,
		Seed1:       seed1,
		Seed2:       seed2,
	}
	err := s.store.CreateMatch(ctx, match)
	s.metrics.RecordBracketMutation("create", err)
	if err != nil {
		return playoffs.Match{}, err
	}

	s.invalidate(ctx)
	logging.Info(s.logger, "playoff match created",
		slog.String(logging.FieldMatchID, match.ID),
		slog.String(logging.FieldRound, string(round)),
		slog.Int("match_number", matchNumber),
	)
	return match, nil
}

// Update merges a partial payload into an existing match. Fields absent
// from the patch stay untouched; explicit nulls clear stored values.
func (s *Service) Update(ctx context.Context, actor auth.Actor, id string, patch playoffs.MatchPatch) (playoffs.Match, error) {
	if !actor.Admin {
		s.metrics.RecordBracketMutation("update", playoffs.ErrPermissionDenied)
		return playoffs.Match{}, playoffs.ErrPermissionDenied
	}

	updated, err := s.store.UpdateMatch(ctx, id, patch)
	s.metrics.RecordBracketMutation("update", err)
	if err != nil {
		return playoffs.Match{}, err
	}

	s.invalidate(ctx)
	logging.Info(s.logger, "playoff match updated", slog.String(logging.FieldMatchID, id))
	return updated, nil
}

// Delete removes a match. Deleting an absent id reports
// playoffs.ErrNotFound; repeated deletes are not idempotent.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id string) error {
	if !actor.Admin {
		s.metrics.RecordBracketMutation("delete", playoffs.ErrPermissionDenied)
		return playoffs.ErrPermissionDenied
	}

	err := s.store.DeleteMatch(ctx, id)
	s.metrics.RecordBracketMutation("delete", err)
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	logging.Info(s.logger, "playoff match deleted", slog.String(logging.FieldMatchID, id))
	return nil
}

// SetupBracket seeds the play-in round for the 12-team layout. It refuses
// to run when any play-in match already exists. The check-then-act pair is
// backstopped by the store's (round, matchNumber) uniqueness: if two
// setups race, the loser surfaces playoffs.ErrDuplicateMatch instead of
// silently double-seeding.
func (s *Service) SetupBracket(ctx context.Context, actor auth.Actor) ([]playoffs.Match, error) {
	if !actor.Admin {
		s.metrics.RecordBracketMutation("setup", playoffs.ErrPermissionDenied)
		return nil, playoffs.ErrPermissionDenied
	}

	existing, err := s.store.ListByRound(ctx, playoffs.RoundPlayIn)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.metrics.RecordBracketMutation("setup", playoffs.ErrAlreadySeeded)
		return nil, playoffs.ErrAlreadySeeded
	}

	created := make([]playoffs.Match, 0, playInMatches)
	for i := 1; i <= playInMatches; i++ {
		match := playoffs.Match{
			ID:          s.newID(),
			Round:       playoffs.RoundPlayIn,
			MatchNumber: i,
			Seed1:       bracketSize - i,
			Seed2:       playInSeedBase + i,
		}
		if err := s.store.CreateMatch(ctx, match); err != nil {
			s.metrics.RecordBracketMutation("setup", err)
			s.invalidate(ctx)
			return created, fmt.Errorf("seeding play-in match %d: %w", i, err)
		}
		created = append(created, match)
	}

	s.metrics.RecordBracketMutation("setup", nil)
	s.invalidate(ctx)
	logging.Info(s.logger, "play-in round seeded", slog.Int(logging.FieldCount, len(created)))
	return created, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
