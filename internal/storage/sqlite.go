// Package storage keeps the record of finished games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/samdwyer/doom/internal/config"
	"github.com/samdwyer/doom/internal/game"
)

// DefaultLimit is how many scores TopScores returns when asked for none.
const DefaultLimit = 10

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID       int64
	Session  string
	Name     string
	Outcome  string // "won" or "lost"
	Cause    string // Why a lost game ended
	Depth    int
	MaxDepth int
	Gold     int
	Seed     int64
	EndedAt  time.Time
}

var _ game.ScoreRecorder = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			depth INTEGER NOT NULL,
			max_depth INTEGER NOT NULL,
			gold INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(gold DESC, max_depth DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(ctx context.Context, sc game.Score) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (session, name, outcome, cause, depth, max_depth, gold, seed, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.Session, sc.Name, sc.Outcome.String(), sc.Cause,
		sc.Depth, sc.MaxDepth, sc.Gold, sc.Seed, sc.EndedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordScore implements game.ScoreRecorder.
func (s *Store) RecordScore(ctx context.Context, sc game.Score) error {
	_, err := s.SaveScore(ctx, sc)
	return err
}

// TopScores retrieves the best games, richest first and then deepest.
func (s *Store) TopScores(ctx context.Context, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session, name, outcome, cause, depth, max_depth, gold, seed, ended_at
		 FROM scores
		 ORDER BY gold DESC, max_depth DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var endedAt int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Name, &e.Outcome, &e.Cause,
			&e.Depth, &e.MaxDepth, &e.Gold, &e.Seed, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EndedAt = time.Unix(endedAt, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Count returns how many games have been recorded.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scores").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	return n, nil
}
