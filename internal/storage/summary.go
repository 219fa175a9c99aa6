package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// Summary contains aggregated statistics over all solved days.
type Summary struct {
	Started       int
	Solved        int
	BestElapsed   time.Duration
	AvgMoves      float64
	HintsUsed     int
	CurrentStreak int
	LongestStreak int
	LastSolved    string
}

// Summary aggregates progress and completions. The current streak counts
// consecutive solved days ending today or yesterday.
func (s *Store) Summary(today time.Time) (*Summary, error) {
	sum := &Summary{}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM progress WHERE player = ?`, s.player).Scan(&sum.Started); err != nil {
		return nil, fmt.Errorf("storage: cannot count progress: %w", err)
	}

	var bestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT date), COALESCE(MIN(elapsed_ms), 0), COALESCE(AVG(moves), 0), COALESCE(SUM(hints), 0)
		 FROM completions WHERE player = ?`,
		s.player,
	).Scan(&sum.Solved, &bestMS, &sum.AvgMoves, &sum.HintsUsed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.BestElapsed = time.Duration(bestMS) * time.Millisecond

	days, err := s.CompletedDays()
	if err != nil {
		return nil, err
	}
	if len(days) > 0 {
		sum.LastSolved = days[len(days)-1]
	}
	sum.CurrentStreak, sum.LongestStreak = streaks(days, today)
	return sum, nil
}

// streaks computes the current and longest runs of consecutive dates.
// days must be sorted ascending and distinct.
func streaks(days []string, today time.Time) (current, longest int) {
	var prev time.Time
	run := 0
	for _, d := range days {
		t, err := time.Parse(core.DateLayout, d)
		if err != nil {
			continue
		}
		if !prev.IsZero() && t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = t
	}

	if prev.IsZero() {
		return 0, longest
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if gap := day.Sub(prev); gap == 0 || gap == 24*time.Hour {
		current = run
	}
	return current, longest
}
