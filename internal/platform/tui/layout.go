package tui

import (
	"github.com/vovakirdan/dayfill/internal/config"
	platformcore "github.com/vovakirdan/dayfill/internal/core"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

const (
	// screenTop is the number of terminal lines above the board screen
	// (the HUD line and a spacer).
	screenTop = 2

	boardMarginX = 2
	trayGapX     = 4
	trayMinWidth = 16

	// A tray sub-cell is two columns by one line.
	trayCellW = 2
	trayCellH = 1
)

// trayItem is one unplaced piece in the tray.
type trayItem struct {
	ID     core.ShapeID
	Matrix core.Matrix
	Rect   platformcore.Rect // the matrix area; the label sits on the line above
}

// boardLayout positions the board and the piece tray in screen
// coordinates. The screen starts screenTop lines below the terminal top.
type boardLayout struct {
	cfg    config.BoardConfig
	Board  platformcore.Rect
	Tray   platformcore.Rect
	Items  []trayItem
	Width  int
	Height int
}

// trayPiece is the input for laying out the tray.
type trayPiece struct {
	ID     core.ShapeID
	Matrix core.Matrix
}

// newBoardLayout places the board at the left and the tray to its right,
// or below it when the terminal is too narrow.
func newBoardLayout(cfg config.BoardConfig, width int, pieces []trayPiece) boardLayout {
	l := boardLayout{cfg: cfg}
	l.Board = platformcore.NewRect(
		boardMarginX, 0,
		core.Cols*cfg.CellWidth+(core.Cols-1)*cfg.GapX,
		core.Rows*cfg.CellHeight+(core.Rows-1)*cfg.GapY,
	)

	trayX := l.Board.Right() + trayGapX
	if width-trayX-1 >= trayMinWidth {
		l.Tray = platformcore.NewRect(trayX, 0, width-trayX-1, l.Board.H)
	} else {
		l.Tray = platformcore.NewRect(boardMarginX, l.Board.Bottom()+1, platformcore.Max(l.Board.W, trayMinWidth), 0)
	}
	l.flowTray(pieces)

	l.Width = platformcore.Max(width, l.Tray.Right()+1)
	l.Height = platformcore.Max(l.Board.Bottom(), l.Tray.Bottom())
	return l
}

// flowTray packs pieces left to right, wrapping at the tray width. The
// tray grows downward to fit.
func (l *boardLayout) flowTray(pieces []trayPiece) {
	x, y := l.Tray.X, l.Tray.Y+1
	rowH := 0
	for _, p := range pieces {
		w := platformcore.Max(p.Matrix.Cols()*trayCellW, len(p.ID))
		h := p.Matrix.Rows() * trayCellH
		if x > l.Tray.X && x+w > l.Tray.Right() {
			x = l.Tray.X
			y += rowH + 2
			rowH = 0
		}
		l.Items = append(l.Items, trayItem{
			ID:     p.ID,
			Matrix: p.Matrix,
			Rect:   platformcore.NewRect(x, y, p.Matrix.Cols()*trayCellW, h),
		})
		x += w + 2
		rowH = platformcore.Max(rowH, h)
	}
	if bottom := y + rowH; bottom > l.Tray.Bottom() {
		l.Tray.H = bottom - l.Tray.Y
	}
}

// Metrics returns the board geometry for drag resolution, in screen
// coordinates.
func (l boardLayout) Metrics() core.BoardMetrics {
	return core.BoardMetrics{
		Origin:     core.Pt(float64(l.Board.X), float64(l.Board.Y)),
		CellWidth:  float64(l.cfg.CellWidth),
		CellHeight: float64(l.cfg.CellHeight),
		GapX:       float64(l.cfg.GapX),
		GapY:       float64(l.cfg.GapY),
	}
}

// CellRect returns the screen rectangle of a board cell.
func (l boardLayout) CellRect(p core.Position) platformcore.Rect {
	return platformcore.NewRect(
		l.Board.X+p.Col*(l.cfg.CellWidth+l.cfg.GapX),
		l.Board.Y+p.Row*(l.cfg.CellHeight+l.cfg.GapY),
		l.cfg.CellWidth,
		l.cfg.CellHeight,
	)
}

// CellAt returns the board cell under a screen coordinate. Gaps between
// cells do not count.
func (l boardLayout) CellAt(x, y int) (core.Position, bool) {
	if !l.Board.Contains(x, y) {
		return core.Position{}, false
	}
	lx, ly := l.Board.Local(x, y)
	tw, th := l.cfg.CellWidth+l.cfg.GapX, l.cfg.CellHeight+l.cfg.GapY
	if lx%tw >= l.cfg.CellWidth || ly%th >= l.cfg.CellHeight {
		return core.Position{}, false
	}
	return core.P(ly/th, lx/tw), true
}

// TrayItemAt returns the tray piece under a screen coordinate and the
// sub-cell of its matrix that was hit. Empty matrix cells do not count.
func (l boardLayout) TrayItemAt(x, y int) (trayItem, core.Position, bool) {
	for _, it := range l.Items {
		if !it.Rect.Contains(x, y) {
			continue
		}
		lx, ly := it.Rect.Local(x, y)
		sub := core.P(ly/trayCellH, lx/trayCellW)
		if it.Matrix[sub.Row][sub.Col] {
			return it, sub, true
		}
	}
	return trayItem{}, core.Position{}, false
}

// pointerAt converts a screen coordinate to a drag pointer at the centre
// of the terminal cell.
func pointerAt(x, y int) core.Point {
	return core.Pt(float64(x)+0.5, float64(y)+0.5)
}

// trayOffset is the drag offset for grabbing sub-cell sub of a tray
// piece: the pointer sits at the centre of the matching board cell.
func trayOffset(sub core.Position, m core.BoardMetrics) core.Point {
	return core.Pt(
		float64(sub.Col)*m.TileWidth()+m.CellWidth/2,
		float64(sub.Row)*m.TileHeight()+m.CellHeight/2,
	)
}
