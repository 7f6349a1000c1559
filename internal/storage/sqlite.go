// Package storage provides SQLite-based persistence for finished arena
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Host names recorded with each session.
const (
	HostTerminal = "terminal"
	HostWindow   = "window"
	HostSSH      = "ssh"
)

// SessionRecord is one finished arena session.
type SessionRecord struct {
	ID            int64
	Layout        string
	Host          string
	Player        string
	Seed          int64
	Ticks         int
	BallsSpawned  int
	BricksCleared int
	Duration      int // Duration in seconds
	CreatedAt     time.Time
}

// LayoutTotals aggregates all sessions played on one layout.
type LayoutTotals struct {
	Sessions      int
	Ticks         int
	BallsSpawned  int
	BricksCleared int
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout TEXT NOT NULL,
			host TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			balls_spawned INTEGER NOT NULL DEFAULT 0,
			bricks_cleared INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_layout ON sessions(layout);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (layout, host, player, seed, ticks, balls_spawned, bricks_cleared, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Layout,
		rec.Host,
		rec.Player,
		rec.Seed,
		rec.Ticks,
		rec.BallsSpawned,
		rec.BricksCleared,
		rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty layout matches every layout.
func (s *Store) RecentSessions(layout string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, layout, host, player, seed, ticks, balls_spawned,
		        bricks_cleared, duration_secs, created_at
		 FROM sessions
		 WHERE ? = '' OR layout = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		layout, layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.Layout,
			&rec.Host,
			&rec.Player,
			&rec.Seed,
			&rec.Ticks,
			&rec.BallsSpawned,
			&rec.BricksCleared,
			&rec.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Totals sums all sessions recorded for a layout.
func (s *Store) Totals(layout string) (LayoutTotals, error) {
	var t LayoutTotals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(balls_spawned), 0),
		        COALESCE(SUM(bricks_cleared), 0)
		 FROM sessions
		 WHERE layout = ?`,
		layout,
	).Scan(&t.Sessions, &t.Ticks, &t.BallsSpawned, &t.BricksCleared)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	return t, nil
}

// ClearSessions deletes all sessions for the given layout.
func (s *Store) ClearSessions(layout string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE layout = ?", layout)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
