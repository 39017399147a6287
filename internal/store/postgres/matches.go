// Package postgres persists playoff matches in Postgres. It implements
// the bracket engine's Store contract; the unique (round, match_number)
// index is what turns a lost seeding race into a duplicate-match error.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"league-hub/internal/domain/playoffs"
)

const uniqueViolation = "23505"

// MatchStore implements bracket.Store on top of a Postgres connection.
type MatchStore struct {
	db *sql.DB
}

// New opens a Postgres connection pool and verifies connectivity.
func New(dsn string) (*MatchStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &MatchStore{db: db}, nil
}

// Close releases the connection pool.
func (s *MatchStore) Close() error {
	return s.db.Close()
}

// Ping verifies the connection is still healthy.
func (s *MatchStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const matchColumns = "id, round, match_number, seed1, seed2, team1, team2, team1_score, team2_score, winner"

// ListMatches returns every match, ordered by round then match number.
func (s *MatchStore) ListMatches(ctx context.Context) ([]playoffs.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM playoff_matches
		ORDER BY CASE round
			WHEN 'play_in' THEN 1
			WHEN 'wildcard' THEN 2
			WHEN 'divisional' THEN 3
			WHEN 'conference' THEN 4
			WHEN 'super_bowl' THEN 5
			ELSE 6
		END, match_number
	`, matchColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

// ListByRound returns one round's matches ordered by match number.
func (s *MatchStore) ListByRound(ctx context.Context, round playoffs.Round) ([]playoffs.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM playoff_matches
		WHERE round = $1
		ORDER BY match_number
	`, matchColumns)

	rows, err := s.db.QueryContext(ctx, query, string(round))
	if err != nil {
		return nil, fmt.Errorf("query matches for round %s: %w", round, err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

// GetMatch retrieves a match by id.
func (s *MatchStore) GetMatch(ctx context.Context, id string) (playoffs.Match, error) {
	query := fmt.Sprintf("SELECT %s FROM playoff_matches WHERE id = $1", matchColumns)
	match, err := scanMatch(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return playoffs.Match{}, playoffs.ErrNotFound
	}
	if err != nil {
		return playoffs.Match{}, fmt.Errorf("get match %s: %w", id, err)
	}
	return match, nil
}

// CreateMatch inserts a new match. A (round, match_number) collision
// surfaces as playoffs.ErrDuplicateMatch.
func (s *MatchStore) CreateMatch(ctx context.Context, match playoffs.Match) error {
	query := `
		INSERT INTO playoff_matches (id, round, match_number, seed1, seed2, team1, team2, team1_score, team2_score, winner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		match.ID, string(match.Round), match.MatchNumber, match.Seed1, match.Seed2,
		match.Team1, match.Team2, match.Team1Score, match.Team2Score, match.Winner,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return playoffs.ErrDuplicateMatch
		}
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// UpdateMatch applies a partial update in a single statement so
// concurrent updates never interleave partial field writes.
func (s *MatchStore) UpdateMatch(ctx context.Context, id string, patch playoffs.MatchPatch) (playoffs.Match, error) {
	assignments, args := buildPatchAssignments(patch)
	if len(assignments) == 0 {
		return s.GetMatch(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE playoff_matches SET %s WHERE id = $%d RETURNING %s",
		strings.Join(assignments, ", "), len(args), matchColumns,
	)

	match, err := scanMatch(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return playoffs.Match{}, playoffs.ErrNotFound
	}
	if err != nil {
		return playoffs.Match{}, fmt.Errorf("update match %s: %w", id, err)
	}
	return match, nil
}

// DeleteMatch removes a match; deleting an absent id is an error.
func (s *MatchStore) DeleteMatch(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM playoff_matches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete match %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete match %s: %w", id, err)
	}
	if affected == 0 {
		return playoffs.ErrNotFound
	}
	return nil
}

// buildPatchAssignments turns the set fields of a patch into SET clauses
// with positional args. Nil values on set fields become SQL NULLs.
func buildPatchAssignments(patch playoffs.MatchPatch) ([]string, []interface{}) {
	var assignments []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Team1.Set {
		add("team1", patch.Team1.Value)
	}
	if patch.Team2.Set {
		add("team2", patch.Team2.Value)
	}
	if patch.Team1Score.Set {
		add("team1_score", patch.Team1Score.Value)
	}
	if patch.Team2Score.Set {
		add("team2_score", patch.Team2Score.Value)
	}
	if patch.Winner.Set {
		add("winner", patch.Winner.Value)
	}
	return assignments, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (playoffs.Match, error) {
	var (
		m          playoffs.Match
		round      string
		team1      sql.NullString
		team2      sql.NullString
		team1Score sql.NullInt64
		team2Score sql.NullInt64
		winner     sql.NullString
	)
	err := row.Scan(&m.ID, &round, &m.MatchNumber, &m.Seed1, &m.Seed2, &team1, &team2, &team1Score, &team2Score, &winner)
	if err != nil {
		return playoffs.Match{}, err
	}
	m.Round = playoffs.Round(round)
	m.Team1 = nullString(team1)
	m.Team2 = nullString(team2)
	m.Team1Score = nullInt(team1Score)
	m.Team2Score = nullInt(team2Score)
	m.Winner = nullString(winner)
	return m, nil
}

func scanMatches(rows *sql.Rows) ([]playoffs.Match, error) {
	var matches []playoffs.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
