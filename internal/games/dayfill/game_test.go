package dayfill

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

var march15 = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

// fakeClock advances only when told to.
type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock { return &fakeClock{now: march15} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(t *testing.T, opts ...Option) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	s := NewSession(core.DefaultCatalog(), append([]Option{WithClock(clock.Now)}, opts...)...)
	require.NoError(t, s.InitializeGame(march15))
	return s, clock
}

func dotCatalog(n int) *core.Catalog {
	shapes := make([]core.Shape, n)
	for i := range shapes {
		shapes[i] = core.Shape{ID: core.ShapeID(fmt.Sprintf("D%02d", i+1)), Matrix: core.ParseMatrix("#")}
	}
	return core.MustCatalog(shapes)
}

func TestInitializeGame(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, StatusReady, s.Status())
	assert.Equal(t, "2024-03-15", s.DateKey())
	assert.Equal(t, core.P(7, 5), s.Target().WeekdayPos)
	assert.Len(t, s.Unplaced(), 14)
	assert.Empty(t, s.History())
}

func TestInitializeGameInvalidLayout(t *testing.T) {
	layout := core.DefaultLayout()
	layout.Days[0] = layout.Days[1]
	s := NewSession(core.DefaultCatalog(), WithLayout(layout))
	assert.Error(t, s.InitializeGame(march15))
}

func TestFirstMutationStartsGame(t *testing.T) {
	s, clock := newTestSession(t)
	clock.Advance(time.Minute)

	require.NoError(t, s.Place("O1", core.P(3, 3)))
	assert.Equal(t, StatusPlaying, s.Status())
	assert.Equal(t, clock.Now(), s.Stats().StartedAt)
	assert.Equal(t, 1, s.Stats().Moves)
}

func TestPauseBlocksMutations(t *testing.T) {
	s, clock := newTestSession(t)
	require.NoError(t, s.StartNewGame(march15))

	clock.Advance(10 * time.Second)
	s.Pause()
	assert.Equal(t, StatusPaused, s.Status())

	err := s.Place("O1", core.P(3, 3))
	assert.True(t, errors.Is(err, core.ErrNotPlaying))

	clock.Advance(time.Hour)
	assert.Equal(t, 10*time.Second, s.Elapsed())

	s.TogglePause()
	assert.Equal(t, StatusPlaying, s.Status())
	clock.Advance(5 * time.Second)
	assert.Equal(t, 15*time.Second, s.Elapsed())
	require.NoError(t, s.Place("O1", core.P(3, 3)))
}

func TestRejectedPlacementNotifies(t *testing.T) {
	s, _ := newTestSession(t)

	err := s.Place("O1", core.P(4, 0))
	assert.True(t, errors.Is(err, core.ErrInvalidPlacement))
	assert.Empty(t, s.History())

	notices := s.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeWarning, notices[0].Kind)
}

func TestNoticesAreBounded(t *testing.T) {
	s, clock := newTestSession(t)
	for i := 0; i < 5; i++ {
		_ = s.Place("O1", core.P(0, 6))
		clock.Advance(time.Second)
	}
	assert.Len(t, s.Notices(), maxNotices)

	s.ExpireNotices(2 * time.Second)
	assert.Len(t, s.Notices(), 1)

	s.ClearNotices()
	assert.Empty(t, s.Notices())

	s.Post(NoticeError, "save failed")
	notices := s.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeError, notices[0].Kind)
	assert.Equal(t, march15.Add(5*time.Second), notices[0].At)
}

func TestCompletion(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(dotCatalog(47), WithClock(clock.Now))
	require.NoError(t, s.StartNewGame(march15))

	playable := s.Grid().PlayablePositions()
	for i, p := range playable {
		clock.Advance(time.Second)
		require.NoError(t, s.Place(s.Unplaced()[0], p), "dot %d", i)
	}

	assert.Equal(t, StatusCompleted, s.Status())
	assert.True(t, s.IsSolved())
	assert.Equal(t, 47*time.Second, s.Elapsed())

	clock.Advance(time.Hour)
	assert.Equal(t, 47*time.Second, s.Elapsed())

	// Completed is terminal.
	err := s.Remove("D01")
	assert.True(t, errors.Is(err, core.ErrNotPlaying))

	notices := s.Notices()
	require.NotEmpty(t, notices)
	assert.Equal(t, NoticeSuccess, notices[len(notices)-1].Kind)

	require.NoError(t, s.ResetGame())
	assert.Equal(t, StatusPlaying, s.Status())
	assert.Len(t, s.Unplaced(), 47)
}

func TestCompletionAfterMove(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(dotCatalog(47), WithClock(clock.Now))
	require.NoError(t, s.StartNewGame(march15))

	playable := s.Grid().PlayablePositions()
	last := playable[len(playable)-1]
	for _, p := range playable[:len(playable)-1] {
		require.NoError(t, s.Place(s.Unplaced()[0], p))
	}
	// Stack the last dot on top of another, then slide it into the gap.
	require.NoError(t, s.Place("D47", playable[0]))
	assert.Equal(t, StatusPlaying, s.Status())
	assert.NotEmpty(t, s.ContendedCells())

	require.NoError(t, s.MoveTo("D47", last))
	assert.Equal(t, StatusCompleted, s.Status())
}

func TestRestore(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Rotate("I3"))
	require.NoError(t, s.Place("I3", core.P(2, 1)))
	require.NoError(t, s.Place("P1", core.P(2, 6)))
	snap := s.Snapshot()

	other, _ := newTestSession(t)
	require.NoError(t, other.Restore(snap))
	assert.True(t, s.Board().Equal(other.Board()))
	assert.Equal(t, StatusPlaying, other.Status())
	assert.Equal(t, "2024-03-15", other.DateKey())

	bad := snap
	bad.Pieces = append([]core.SnapshotEntry(nil), snap.Pieces...)
	bad.Pieces = append(bad.Pieces, core.SnapshotEntry{PieceID: "O1", AnchorRow: 0, AnchorCol: 2})
	before := core.RenderBoardCompact(other.Board())
	assert.Error(t, other.Restore(bad))
	assert.Equal(t, before, core.RenderBoardCompact(other.Board()))
}

func TestRestoreStats(t *testing.T) {
	s, clock := newTestSession(t)
	require.NoError(t, s.StartNewGame(march15))
	s.RestoreStats(12, 2, 90*time.Second)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 100*time.Second, s.Elapsed())
	assert.Equal(t, 12, s.Stats().Moves)
	assert.Equal(t, 2, s.Stats().HintsUsed)
}
