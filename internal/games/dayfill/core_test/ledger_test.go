package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

func TestNewLedger(t *testing.T) {
	l := ledgerFor(t, march15)

	assert.Len(t, l.Pieces(), 14)
	assert.Len(t, l.Unplaced(), 14)
	assert.Equal(t, 0, l.PlacedCount())
	assert.Equal(t, 0, l.Board().OccupiedCount())
	assert.Len(t, l.Board().EmptyPlayable(), 47)
}

func TestPlaceAndRemove(t *testing.T) {
	l := ledgerFor(t, march15)

	require.NoError(t, l.Place("I3", core.P(2, 0)))

	pp, ok := l.Placement("I3")
	require.True(t, ok)
	assert.Equal(t, 1, pp.Stack)
	assert.Equal(t, []core.Position{core.P(2, 0), core.P(2, 1), core.P(2, 2)}, pp.Cells)

	pi, err := l.Piece("I3")
	require.NoError(t, err)
	assert.True(t, pi.Placed)
	assert.Equal(t, core.P(2, 0), pi.Anchor)

	b := l.Board()
	assert.Equal(t, core.StateOccupied, b.Get(core.P(2, 1)).State)
	assert.Equal(t, core.ShapeID("I3"), b.Get(core.P(2, 1)).PieceID)
	assert.Equal(t, 3, b.OccupiedCount())

	require.NoError(t, l.Remove("I3"))
	_, ok = l.Placement("I3")
	assert.False(t, ok)
	assert.Equal(t, 0, l.Board().OccupiedCount())
	pi, _ = l.Piece("I3")
	assert.False(t, pi.Placed)
}

func TestPlaceErrors(t *testing.T) {
	l := ledgerFor(t, march15)
	require.NoError(t, l.Place("O1", core.P(3, 3)))

	err := l.Place("O1", core.P(3, 4))
	assert.True(t, errors.Is(err, core.ErrAlreadyPlaced))

	err = l.Remove("S1")
	assert.True(t, errors.Is(err, core.ErrNotPlaced))

	err = l.Place("XX", core.P(3, 3))
	assert.True(t, errors.Is(err, core.ErrUnknownShape))

	var pe *core.PlacementError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, core.CodeUnknownShape, pe.Code)
	assert.Equal(t, core.ShapeID("XX"), pe.PieceID)
}

func TestPlaceOverDayTargetRejected(t *testing.T) {
	l := ledgerFor(t, march15)
	before := core.RenderBoardCompact(l.Board())

	err := l.Place("O1", core.P(4, 0))
	assert.True(t, errors.Is(err, core.ErrInvalidPlacement))
	assert.Equal(t, before, core.RenderBoardCompact(l.Board()))
	assert.Equal(t, 0, l.PlacedCount())
}

func TestStackOrderAfterReplace(t *testing.T) {
	l := ledgerFor(t, march15)

	require.NoError(t, l.Place("I3", core.P(2, 0)))
	require.NoError(t, l.Place("I4", core.P(2, 1)))

	// Overlap is legal; the later stamp wins.
	b := l.Board()
	assert.Equal(t, core.ShapeID("I4"), b.Get(core.P(2, 1)).PieceID)
	assert.Equal(t, 2, b.Get(core.P(2, 1)).Count)
	assert.Equal(t, []core.Position{core.P(2, 1), core.P(2, 2)}, l.ContendedCells())
	assert.Equal(t, []core.ShapeID{"I3", "I4"}, l.ConflictingPieces())
	assert.True(t, l.InConflict("I3"))

	// Remove and re-place: I3 gets a fresh maximum stack index.
	require.NoError(t, l.Remove("I3"))
	require.NoError(t, l.Place("I3", core.P(2, 0)))

	pp, _ := l.Placement("I3")
	assert.Equal(t, 3, pp.Stack)
	assert.Equal(t, core.ShapeID("I3"), l.Board().Get(core.P(2, 1)).PieceID)

	placed := l.Placed()
	require.Len(t, placed, 2)
	assert.Equal(t, core.ShapeID("I4"), placed[0].PieceID)
	assert.Equal(t, core.ShapeID("I3"), placed[1].PieceID)
	assert.Equal(t, []core.ShapeID{"I4", "I3"}, l.ConflictingPieces())
}

func TestMove(t *testing.T) {
	l := ledgerFor(t, march15)
	require.NoError(t, l.Place("I3", core.P(2, 0)))
	require.NoError(t, l.Place("I4", core.P(3, 0)))

	require.NoError(t, l.Move("I3", core.P(5, 0)))
	pp, _ := l.Placement("I3")
	assert.Equal(t, core.P(5, 0), pp.Anchor)
	assert.Equal(t, 3, pp.Stack)
	assert.False(t, l.Board().IsOccupied(core.P(2, 0)))

	// Rejected move leaves the piece where it was.
	err := l.Move("I3", core.P(4, 0))
	assert.True(t, errors.Is(err, core.ErrInvalidPlacement))
	pp, _ = l.Placement("I3")
	assert.Equal(t, core.P(5, 0), pp.Anchor)
	assert.Equal(t, 3, pp.Stack)

	err = l.Move("S1", core.P(3, 3))
	assert.True(t, errors.Is(err, core.ErrNotPlaced))
}

func TestRestoreKeepsStack(t *testing.T) {
	l := ledgerFor(t, march15)
	require.NoError(t, l.Place("I3", core.P(2, 0)))
	require.NoError(t, l.Place("I4", core.P(2, 1)))
	require.NoError(t, l.Remove("I3"))

	require.NoError(t, l.Restore("I3", core.P(2, 0), core.Orientation{}, 1))
	pp, ok := l.Placement("I3")
	require.True(t, ok)
	assert.Equal(t, 1, pp.Stack)
	assert.Equal(t, core.ShapeID("I4"), l.Board().Get(core.P(2, 1)).PieceID)
	pi, _ := l.Piece("I3")
	assert.True(t, pi.Placed)
	assert.Equal(t, core.P(2, 0), pi.Anchor)

	// Later placements still stack above everything restored.
	require.NoError(t, l.Place("O1", core.P(5, 4)))
	pp, _ = l.Placement("O1")
	assert.Equal(t, 3, pp.Stack)
}

func TestRestoreUsesTolerantRule(t *testing.T) {
	l := ledgerFor(t, march15)
	require.NoError(t, l.Place("I4", core.P(3, 6)))
	require.NoError(t, l.Rotate("I4"))

	// Horizontal at (3,6) hangs one cell off the right edge; Rotate would
	// refuse it, Restore accepts it.
	require.NoError(t, l.Restore("I4", core.P(3, 6), core.Orientation{}, 1))
	pp, _ := l.Placement("I4")
	assert.Equal(t, core.Rot0, pp.Orientation.Rotation)
	assert.Equal(t, 1, pp.Stack)
	assert.Equal(t, core.StateOccupied, l.Board().Get(core.P(3, 6)).State)

	err := l.Restore("I3", core.P(4, 0), core.Orientation{}, 0)
	assert.True(t, errors.Is(err, core.ErrInvalidPlacement))
	_, ok := l.Placement("I3")
	assert.False(t, ok)
}

func TestRotateRejectedAtEdge(t *testing.T) {
	l := ledgerFor(t, march15)
	require.NoError(t, l.Place("I2", core.P(5, 0)))
	before, _ := l.Placement("I2")
	board := core.RenderBoardCompact(l.Board())

	// Vertical at (5,0) would run into the blocked bottom row.
	err := l.Rotate("I2")
	assert.True(t, errors.Is(err, core.ErrRotationRejected))

	after, _ := l.Placement("I2")
	assert.Equal(t, before, after)
	assert.Equal(t, board, core.RenderBoardCompact(l.Board()))
	pi, _ := l.Piece("I2")
	assert.Equal(t, core.Rot0, pi.Orientation.Rotation)
}

func TestRotatePlacedKeepsStack(t *testing.T) {
	l := ledgerFor(t, march15)
	require.NoError(t, l.Place("I3", core.P(2, 1)))
	require.NoError(t, l.Place("I4", core.P(5, 5)))

	require.NoError(t, l.Rotate("I3"))
	pp, _ := l.Placement("I3")
	assert.Equal(t, 1, pp.Stack)
	assert.Equal(t, core.Rot90, pp.Orientation.Rotation)
	assert.Equal(t, []core.Position{core.P(2, 1), core.P(3, 1), core.P(4, 1)}, pp.Cells)
	assert.False(t, l.Board().IsOccupied(core.P(2, 2)))
}

func TestRotateUnplacedAlwaysSucceeds(t *testing.T) {
	l := ledgerFor(t, march15)
	for i := 0; i < 4; i++ {
		require.NoError(t, l.Rotate("L1"))
	}
	pi, _ := l.Piece("L1")
	assert.Equal(t, core.Rot0, pi.Orientation.Rotation)

	require.NoError(t, l.Rotate("L1"))
	m, err := l.Matrix("L1")
	require.NoError(t, err)
	assert.True(t, m.Equal(core.ParseMatrix("###", "#..")))
}

func TestFlipRejected(t *testing.T) {
	l := ledgerFor(t, march15)

	// Three of four cells on the board is accepted for placement...
	require.NoError(t, l.Place("L1", core.P(4, 6)))

	// ...but a flip must fit entirely.
	err := l.FlipHorizontal("L1")
	assert.True(t, errors.Is(err, core.ErrFlipRejected))
	err = l.FlipVertical("L1")
	assert.True(t, errors.Is(err, core.ErrFlipRejected))

	pi, _ := l.Piece("L1")
	assert.Equal(t, core.Orientation{}, pi.Orientation)
}

func TestSetOrientation(t *testing.T) {
	l := ledgerFor(t, march15)
	o := core.Orientation{Rotation: core.Rot180, FlipH: true}

	require.NoError(t, l.SetOrientation("L1", o))
	pi, _ := l.Piece("L1")
	assert.Equal(t, o, pi.Orientation)

	_, err := core.DefaultCatalog().Oriented("L1", core.Orientation{Rotation: 45})
	assert.Error(t, err)
	assert.Error(t, l.SetOrientation("L1", core.Orientation{Rotation: 45}))
}

func TestSelectionFlags(t *testing.T) {
	l := ledgerFor(t, march15)

	l.SetSelected("T1")
	l.SetDragging("T2")
	for _, p := range l.Pieces() {
		assert.Equal(t, p.ID == "T1", p.Selected, "selected flag of %s", p.ID)
		assert.Equal(t, p.ID == "T2", p.Dragging, "dragging flag of %s", p.ID)
	}

	l.SetSelected("")
	for _, p := range l.Pieces() {
		assert.False(t, p.Selected)
	}
}

func TestAvailablePositions(t *testing.T) {
	l := ledgerFor(t, march15)

	dots, err := l.AvailablePositions("O1")
	require.NoError(t, err)
	assert.Len(t, dots, 47)

	bars, err := l.AvailablePositions("I2")
	require.NoError(t, err)
	assert.Contains(t, bars, core.P(2, -2))
	assert.NotContains(t, bars, core.P(2, -3))
	assert.NotContains(t, bars, core.P(4, 0))

	_, err = l.AvailablePositions("XX")
	assert.True(t, errors.Is(err, core.ErrUnknownShape))
}
