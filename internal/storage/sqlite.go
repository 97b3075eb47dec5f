// Package storage keeps the RoboRun leaderboard in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// DefaultPath is where the leaderboard lives unless --db says otherwise.
const DefaultPath = "~/.roborun/scores.db"

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// Run is one finished round as written to the leaderboard.
type Run struct {
	RoundID    uuid.UUID
	Score      int
	Distance   float64
	Coins      int
	Difficulty int
	Duration   time.Duration
}

// ScoreEntry is a leaderboard row.
type ScoreEntry struct {
	ID         int64
	RoundID    uuid.UUID
	Score      int
	Distance   float64
	Coins      int
	Difficulty int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Stats aggregates every stored run.
type Stats struct {
	Runs         int
	HighScore    int
	AvgScore     float64
	BestDistance float64
	TotalCoins   int64
	LastPlayed   time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			difficulty INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records a finished round. Saving the same round twice fails.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (round_id, score, distance, coins, difficulty, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RoundID.String(), run.Score, run.Distance, run.Coins, run.Difficulty, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best N runs ordered by score descending.
// Ties keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, score, distance, coins, difficulty, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
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
		var roundID string
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &roundID, &e.Score, &e.Distance, &e.Coins, &e.Difficulty, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		id, err := uuid.Parse(roundID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad round id %q: %w", roundID, err)
		}
		e.RoundID = id
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best stored score, or 0 when there are no runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns aggregated statistics over every stored run.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(distance), 0), COALESCE(SUM(coins), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.BestDistance, &stats.TotalCoins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearScores deletes every stored run.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
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
