package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/krimeano/upl/internal/league"
)

// Store wraps a Postgres connection holding the season's results and the
// upcoming fixtures. It only reads during a run.
type Store struct {
	DB  *sql.DB
	Log *logrus.Entry
}

// NewStore opens a Postgres connection using the given connection string.
func NewStore(ctx context.Context, connStr string, log *logrus.Entry) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// verify early
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	log.Debug("connected to database")
	return &Store{DB: db, Log: log}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Migrate creates the necessary tables if they do not exist.
// Goals are text so that forfeits can be stored as "+" and "-".
func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS results (
		    id         SERIAL PRIMARY KEY,
		    week       INT  NOT NULL DEFAULT 0,
		    home_team  TEXT NOT NULL,
		    away_team  TEXT NOT NULL,
		    home_goals TEXT NOT NULL,
		    away_goals TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS fixtures (
		    id        SERIAL PRIMARY KEY,
		    week      INT  NOT NULL DEFAULT 0,
		    home_team TEXT NOT NULL,
		    away_team TEXT NOT NULL
		);`,
	}
	for _, q := range queries {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}
	return nil
}

// Matches loads every recorded result in play order. The row id stands in
// for the line number in errors.
func (s *Store) Matches(ctx context.Context) ([]league.MatchRecord, error) {
	const q = `
SELECT id, home_team, away_team, home_goals, away_goals
FROM results
ORDER BY week, id;
`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var records []league.MatchRecord
	for rows.Next() {
		var r league.MatchRecord
		if err := rows.Scan(&r.Line, &r.Home, &r.Away, &r.Goals[0], &r.Goals[1]); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results rows: %w", err)
	}
	s.Log.WithField("records", len(records)).Debug("loaded results")
	return records, nil
}

// Fixtures loads the earliest week in the fixtures table, which is the next round.
func (s *Store) Fixtures(ctx context.Context) ([]league.FixtureRecord, error) {
	const q = `
SELECT id, home_team, away_team
FROM fixtures
WHERE week = (SELECT MIN(week) FROM fixtures)
ORDER BY id;
`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying fixtures: %w", err)
	}
	defer rows.Close()

	var records []league.FixtureRecord
	for rows.Next() {
		var r league.FixtureRecord
		if err := rows.Scan(&r.Line, &r.Home, &r.Away); err != nil {
			return nil, fmt.Errorf("scanning fixture: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fixtures rows: %w", err)
	}
	s.Log.WithField("records", len(records)).Debug("loaded fixtures")
	return records, nil
}
