package dayfill

import "time"

// Stats tracks effort for the current game.
type Stats struct {
	Moves       int
	HintsUsed   int
	StartedAt   time.Time
	CompletedAt time.Time

	pausedFor time.Duration
	pausedAt  time.Time
}

// Elapsed returns active play time, excluding pauses.
func (st Stats) Elapsed(now time.Time) time.Duration {
	if st.StartedAt.IsZero() {
		return 0
	}
	end := now
	if !st.CompletedAt.IsZero() {
		end = st.CompletedAt
	}
	if !st.pausedAt.IsZero() {
		end = st.pausedAt
	}
	d := end.Sub(st.StartedAt) - st.pausedFor
	if d < 0 {
		return 0
	}
	return d
}
