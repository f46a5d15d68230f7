package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"classic-snake/internal/domain"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHistoryStatsEmpty(t *testing.T) {
	h := openTestHistory(t)

	stats, err := h.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != (domain.HistoryStats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
}

func TestHistoryRecordAndStats(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	sessions := []domain.Session{
		{ID: "a", StartedAt: start, EndedAt: start.Add(time.Minute), Score: 4, Length: 7, Outcome: domain.PhaseGameOver},
		{ID: "b", StartedAt: start.Add(2 * time.Minute), EndedAt: start.Add(3 * time.Minute), Score: 9, Length: 12, Outcome: domain.PhaseGameOver},
		{ID: "c", StartedAt: start.Add(4 * time.Minute), EndedAt: start.Add(5 * time.Minute), Score: 22, Length: 25, Outcome: domain.PhaseWon},
	}
	for _, s := range sessions {
		if err := h.Record(ctx, s); err != nil {
			t.Fatalf("Record(%s): %v", s.ID, err)
		}
	}

	stats, err := h.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := domain.HistoryStats{Games: 3, BestScore: 22, TotalScore: 35}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}

	recent, err := h.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d sessions, want 2", len(recent))
	}
	if recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("order = %s,%s, want c,b", recent[0].ID, recent[1].ID)
	}
	if recent[0].Outcome != domain.PhaseWon {
		t.Errorf("outcome = %v, want won", recent[0].Outcome)
	}
	if recent[0].Duration() != time.Minute {
		t.Errorf("duration = %v, want 1m", recent[0].Duration())
	}
}
