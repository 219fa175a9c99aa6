package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/config"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

func testPieces() []trayPiece {
	c := core.DefaultCatalog()
	var out []trayPiece
	for _, s := range c.Shapes() {
		out = append(out, trayPiece{ID: s.ID, Matrix: s.Matrix})
	}
	return out
}

func TestLayoutWide(t *testing.T) {
	l := newBoardLayout(config.DefaultConfig().Board, 120, testPieces())

	assert.Equal(t, 2, l.Board.X)
	assert.Equal(t, 7*5+6, l.Board.W)
	assert.Equal(t, 8*2, l.Board.H)
	assert.Equal(t, l.Board.Right()+trayGapX, l.Tray.X, "tray sits right of the board")
	require.Len(t, l.Items, 14)
	assert.Equal(t, core.ShapeID("L1"), l.Items[0].ID)
	assert.Equal(t, l.Tray.X, l.Items[0].Rect.X)
	assert.Equal(t, l.Tray.Y+1, l.Items[0].Rect.Y, "first line holds the labels")

	for _, it := range l.Items {
		assert.LessOrEqual(t, it.Rect.Right(), l.Tray.Right(), "item %s overflows the tray", it.ID)
		assert.LessOrEqual(t, it.Rect.Bottom(), l.Tray.Bottom(), "item %s below the tray", it.ID)
	}
}

func TestLayoutNarrowPutsTrayBelow(t *testing.T) {
	l := newBoardLayout(config.DefaultConfig().Board, 50, testPieces())

	assert.Equal(t, l.Board.X, l.Tray.X)
	assert.Greater(t, l.Tray.Y, l.Board.Bottom()-1)
	assert.GreaterOrEqual(t, l.Height, l.Tray.Bottom())
}

func TestLayoutCellAt(t *testing.T) {
	l := newBoardLayout(config.DefaultConfig().Board, 120, nil)

	p, ok := l.CellAt(2, 0)
	require.True(t, ok)
	assert.Equal(t, core.P(0, 0), p)

	// Second line of row 3, column 1.
	r := l.CellRect(core.P(3, 1))
	p, ok = l.CellAt(r.X+4, r.Y+1)
	require.True(t, ok)
	assert.Equal(t, core.P(3, 1), p)

	// The gap column between cells is not a cell.
	_, ok = l.CellAt(r.Right(), r.Y)
	assert.False(t, ok)

	_, ok = l.CellAt(0, 0)
	assert.False(t, ok)
}

func TestLayoutTrayItemAt(t *testing.T) {
	l := newBoardLayout(config.DefaultConfig().Board, 120, testPieces())
	first := l.Items[0] // L1: "#.", "#.", "##"

	it, sub, ok := l.TrayItemAt(first.Rect.X, first.Rect.Y)
	require.True(t, ok)
	assert.Equal(t, core.ShapeID("L1"), it.ID)
	assert.Equal(t, core.P(0, 0), sub)

	it, sub, ok = l.TrayItemAt(first.Rect.X+3, first.Rect.Y+2)
	require.True(t, ok)
	assert.Equal(t, core.ShapeID("L1"), it.ID)
	assert.Equal(t, core.P(2, 1), sub)

	// Empty matrix cells are not part of the piece.
	_, _, ok = l.TrayItemAt(first.Rect.X+2, first.Rect.Y)
	assert.False(t, ok)
}

func TestTrayOffsetLandsOnCellCentre(t *testing.T) {
	l := newBoardLayout(config.DefaultConfig().Board, 120, nil)
	metrics := l.Metrics()

	target := l.CellRect(core.P(2, 3))
	cx, cy := target.X+2, target.Y+1
	offset := trayOffset(core.P(1, 0), metrics)

	// Grabbing sub-cell (1,0) over cell (2,3) puts the anchor at (1,3).
	fr, fc := core.FloatAnchor(pointerAt(cx, cy), offset, metrics)
	assert.Equal(t, core.P(1, 3), core.BestCandidate(fr, fc))
}
