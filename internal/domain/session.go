package domain

import "time"

// Session is the record of one finished game.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Score     int
	Length    int
	Outcome   Phase
}

func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

type HistoryStats struct {
	Games      int
	BestScore  int
	TotalScore int
}
