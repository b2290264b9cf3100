// Package storage provides a SQLite log of finished road runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only run summaries are stored; simulation state is never written or
// restored.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// RunEntry summarizes one finished session.
type RunEntry struct {
	ID        string
	Player    string // "local" or the SSH user
	StartedAt time.Time
	Duration  time.Duration
	Frames    int     // Frames rendered
	Scrolled  float64 // Total road scroll in field pixels
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			scrolled REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run. An empty ID is replaced with a new UUID.
// Returns the ID of the stored record.
func (s *Store) SaveRun(run RunEntry) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, started_at, duration_ms, frames, scrolled)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Player,
		run.StartedAt.UnixMilli(),
		run.Duration.Milliseconds(),
		run.Frames,
		run.Scrolled,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns retrieves the latest N runs, newest first.
// An empty player matches every player.
func (s *Store) RecentRuns(player string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, started_at, duration_ms, frames, scrolled
		 FROM runs
		 WHERE ? = '' OR player = ?
		 ORDER BY started_at DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e          RunEntry
			startedAt  int64
			durationMS int64
		)
		if err := rows.Scan(&e.ID, &e.Player, &startedAt, &durationMS, &e.Frames, &e.Scrolled); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = time.UnixMilli(startedAt)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// LongestRun returns the run with the largest scroll distance.
// Returns nil if no runs exist.
func (s *Store) LongestRun() (*RunEntry, error) {
	var (
		e          RunEntry
		startedAt  int64
		durationMS int64
	)
	err := s.db.QueryRow(
		`SELECT id, player, started_at, duration_ms, frames, scrolled
		 FROM runs
		 ORDER BY scrolled DESC
		 LIMIT 1`,
	).Scan(&e.ID, &e.Player, &startedAt, &durationMS, &e.Frames, &e.Scrolled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	e.StartedAt = time.UnixMilli(startedAt)
	e.Duration = time.Duration(durationMS) * time.Millisecond
	return &e, nil
}

// ClearRuns deletes all runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
