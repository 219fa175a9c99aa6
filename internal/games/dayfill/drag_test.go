package dayfill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// Terminal-like tiles: 5x2 cells with a one-column gap, board at (2,1).
var testMetrics = core.BoardMetrics{Origin: core.Pt(2, 1), CellWidth: 5, CellHeight: 2, GapX: 1}

func pointerAt(p core.Position) core.Point {
	return testMetrics.CellOrigin(p)
}

func TestDragFromStorageToBoard(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.StartDrag(DragStart{PieceID: "I3", Origin: ZoneStorage, Metrics: testMetrics}))
	assert.True(t, s.Dragging())
	pi, _ := s.Piece("I3")
	assert.True(t, pi.Dragging)

	preview, ok := s.UpdateDrag(pointerAt(core.P(3, 2)))
	require.True(t, ok)
	assert.Equal(t, core.P(3, 2), preview.Snap.Cell)
	assert.True(t, preview.Snap.Valid)
	assert.Equal(t, []core.Position{core.P(3, 2), core.P(3, 3), core.P(3, 4)}, preview.Cells)
	assert.Equal(t, 0, s.Board().OccupiedCount(), "drag must not touch the ledger")

	changed, err := s.EndDrag(nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, s.Dragging())

	pp, ok := s.Placement("I3")
	require.True(t, ok)
	assert.Equal(t, core.P(3, 2), pp.Anchor)
	pi, _ = s.Piece("I3")
	assert.False(t, pi.Dragging)
}

func TestDragMovesPlacedPiece(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Place("I3", core.P(2, 0)))

	// Grab the middle cell of the bar.
	offset := pointerAt(core.P(2, 1)).Sub(pointerAt(core.P(2, 0)))
	require.NoError(t, s.StartDrag(DragStart{PieceID: "I3", Offset: offset, Origin: ZoneBoard, Metrics: testMetrics}))

	pointer := pointerAt(core.P(5, 3))
	changed, err := s.EndDrag(&pointer)
	require.NoError(t, err)
	assert.True(t, changed)

	pp, _ := s.Placement("I3")
	assert.Equal(t, core.P(5, 2), pp.Anchor)
	assert.Equal(t, MoveShift, s.History()[1].Kind)
}

func TestDragDropInvalid(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.StartDrag(DragStart{PieceID: "O1", Origin: ZoneStorage, Metrics: testMetrics}))

	pointer := pointerAt(s.Target().DayPos)
	changed, err := s.EndDrag(&pointer)
	assert.False(t, changed)
	assert.True(t, errors.Is(err, core.ErrInvalidPlacement))
	assert.False(t, s.Dragging())
	assert.Equal(t, 0, s.Board().OccupiedCount())
}

func TestDragDropOffBoard(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.StartDrag(DragStart{PieceID: "O1", Origin: ZoneStorage, Metrics: testMetrics}))

	preview, ok := s.UpdateDrag(core.Pt(-200, -200))
	require.True(t, ok)
	assert.False(t, preview.Snap.OK)
	assert.Empty(t, preview.Cells)

	changed, err := s.EndDrag(nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, s.Board().OccupiedCount())
}

func TestDropToStorage(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Place("S1", core.P(3, 3)))

	require.NoError(t, s.StartDrag(DragStart{PieceID: "S1", Origin: ZoneBoard, Metrics: testMetrics}))
	changed, err := s.DropToStorage()
	require.NoError(t, err)
	assert.True(t, changed)
	_, ok := s.Placement("S1")
	assert.False(t, ok)

	// An unplaced piece dropped back on the tray is a no-op.
	require.NoError(t, s.StartDrag(DragStart{PieceID: "S1", Origin: ZoneStorage, Metrics: testMetrics}))
	changed, err = s.DropToStorage()
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCancelDrag(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.StartDrag(DragStart{PieceID: "T2", Origin: ZoneStorage, Metrics: testMetrics}))
	s.UpdateDrag(pointerAt(core.P(3, 3)))

	s.CancelDrag()
	assert.False(t, s.Dragging())
	_, ok := s.Preview()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Board().OccupiedCount())

	changed, err := s.EndDrag(nil)
	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestStartDragWhilePaused(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.StartNewGame(march15))
	s.Pause()

	err := s.StartDrag(DragStart{PieceID: "T2", Origin: ZoneStorage, Metrics: testMetrics})
	assert.True(t, errors.Is(err, core.ErrNotPlaying))
	assert.False(t, s.Dragging())
}
