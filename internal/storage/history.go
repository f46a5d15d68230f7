package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"classic-snake/internal/domain"

	_ "modernc.org/sqlite"
)

const createSessionsTableSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    started_at INTEGER NOT NULL,
    ended_at INTEGER NOT NULL,
    score INTEGER NOT NULL,
    length INTEGER NOT NULL,
    outcome TEXT NOT NULL
);
`

const createSessionsIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions (score);
`

// History records finished games in a local sqlite database.
type History struct {
	db *sql.DB
}

func OpenHistory(path string) (*History, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	for _, query := range []string{createSessionsTableSQL, createSessionsIndexSQL} {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize history database: %w", err)
		}
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) Record(ctx context.Context, s domain.Session) error {
	_, err := h.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO sessions (id, started_at, ended_at, score, length, outcome) VALUES (?, ?, ?, ?, ?, ?)",
		s.ID, s.StartedAt.UnixMilli(), s.EndedAt.UnixMilli(),
		s.Score, s.Length, s.Outcome.String())
	if err != nil {
		return fmt.Errorf("failed to record session %s: %w", s.ID, err)
	}
	return nil
}

func (h *History) Stats(ctx context.Context) (domain.HistoryStats, error) {
	var stats domain.HistoryStats
	row := h.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(score), 0) FROM sessions")
	if err := row.Scan(&stats.Games, &stats.BestScore, &stats.TotalScore); err != nil {
		return domain.HistoryStats{}, fmt.Errorf("failed to read history stats: %w", err)
	}
	return stats, nil
}

// Recent returns up to limit sessions, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]domain.Session, error) {
	rows, err := h.db.QueryContext(ctx,
		"SELECT id, started_at, ended_at, score, length, outcome FROM sessions ORDER BY ended_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var (
			s              domain.Session
			started, ended int64
			outcome        string
		)
		if err := rows.Scan(&s.ID, &started, &ended, &s.Score, &s.Length, &outcome); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.StartedAt = time.UnixMilli(started)
		s.EndedAt = time.UnixMilli(ended)
		s.Outcome = parseOutcome(outcome)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func parseOutcome(s string) domain.Phase {
	switch s {
	case domain.PhaseWon.String():
		return domain.PhaseWon
	case domain.PhaseRunning.String():
		return domain.PhaseRunning
	}
	return domain.PhaseGameOver
}
