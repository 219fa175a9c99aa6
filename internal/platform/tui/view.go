package tui

import (
	"github.com/vovakirdan/dayfill/internal/config"
	platformcore "github.com/vovakirdan/dayfill/internal/core"
	"github.com/vovakirdan/dayfill/internal/games/dayfill"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// boardView draws one frame of the board and tray into a Screen.
type boardView struct {
	session *dayfill.Session
	layout  boardLayout
	theme   Theme
	game    config.GameConfig
	cursor  core.Position
}

// draw renders the board, previews, cursor and tray.
func (v boardView) draw(scr *platformcore.Screen) {
	scr.Resize(v.layout.Width, v.layout.Height)
	scr.Clear()

	paused := v.session.Status() == dayfill.StatusPaused
	for _, p := range v.session.Grid().Positions() {
		v.drawCell(scr, p, paused)
	}
	if paused {
		return
	}

	v.drawPreview(scr)
	if v.session.Status() != dayfill.StatusCompleted && !v.session.Dragging() {
		v.drawCursor(scr)
	}
	v.drawTray(scr)
}

func (v boardView) drawCell(scr *platformcore.Screen, p core.Position, paused bool) {
	occ := v.session.Board().Get(p)
	if occ.State == core.StateBlocked {
		return
	}
	r := v.layout.CellRect(p)
	labelY := r.Y + (r.H-1)/2
	label := fit(v.session.Grid().Label(p), r.W)

	switch {
	case paused:
		scr.FillRect(r, platformcore.Cell{Rune: ' ', BG: v.theme.EmptyBG})
	case occ.Count > 0:
		bg := v.theme.MonoPieceBG
		if shape, err := v.session.Catalog().Shape(occ.PieceID); err == nil {
			bg = v.theme.pieceBG(shape.Color)
		}
		scr.FillRect(r, platformcore.Cell{Rune: ' ', BG: bg})
		scr.DrawTextCentered(r, labelY, fit(string(occ.PieceID), r.W), v.theme.PieceFG)
		if occ.Count > 1 && v.game.HighlightConflicts {
			scr.SetCell(r.Right()-1, r.Y, platformcore.Cell{Rune: '!', FG: v.theme.ConflictFG, BG: bg, Bold: true})
		}
	case occ.State == core.StateTarget:
		scr.FillRect(r, platformcore.Cell{Rune: ' ', BG: v.theme.TargetBG, Bold: true})
		scr.DrawTextCentered(r, labelY, label, v.theme.TargetFG)
	default:
		scr.FillRect(r, platformcore.Cell{Rune: ' ', BG: v.theme.EmptyBG})
		scr.DrawTextCentered(r, labelY, label, v.theme.LabelFG)
	}
}

// previewCells returns the cells to tint: the drag snap while dragging,
// otherwise the selected piece at the cursor.
func (v boardView) previewCells() (cells []core.Position, valid, ok bool) {
	if pv, dragging := v.session.Preview(); dragging {
		return pv.Cells, pv.Snap.Valid, pv.Snap.OK
	}
	id := v.session.Selected()
	if id == "" || v.session.Status() == dayfill.StatusCompleted {
		return nil, false, false
	}
	m, err := v.session.Matrix(id)
	if err != nil {
		return nil, false, false
	}
	return core.Footprint(m, v.cursor), core.Validate(m, v.cursor, v.session.Grid()), true
}

func (v boardView) drawPreview(scr *platformcore.Screen) {
	cells, valid, ok := v.previewCells()
	if !ok {
		return
	}
	bg := v.theme.GhostBG
	if v.game.PreviewValidity {
		bg = v.theme.InvalidBG
		if valid {
			bg = v.theme.ValidBG
		}
	}
	g := v.session.Grid()
	for _, p := range cells {
		if !g.IsInBounds(p) || g.IsBlocked(p) {
			continue
		}
		tint(scr, v.layout.CellRect(p), bg)
	}
}

func (v boardView) drawCursor(scr *platformcore.Screen) {
	r := v.layout.CellRect(v.cursor)
	y := r.Bottom() - 1
	left := scr.GetCell(r.X, y)
	right := scr.GetCell(r.Right()-1, y)
	scr.SetCell(r.X, y, platformcore.Cell{Rune: '[', FG: v.theme.CursorFG, BG: left.BG, Bold: true})
	scr.SetCell(r.Right()-1, y, platformcore.Cell{Rune: ']', FG: v.theme.CursorFG, BG: right.BG, Bold: true})
}

func (v boardView) drawTray(scr *platformcore.Screen) {
	selected := v.session.Selected()
	dragged := core.ShapeID("")
	if d, ok := v.session.Drag(); ok && d.Origin == dayfill.ZoneStorage {
		dragged = d.PieceID
	}

	for _, it := range v.layout.Items {
		labelFG := v.theme.TrayLabel
		if it.ID == selected {
			labelFG = v.theme.TraySelected
		}
		scr.DrawText(it.Rect.X, it.Rect.Y-1, string(it.ID), labelFG)

		bg := v.theme.MonoPieceBG
		if shape, err := v.session.Catalog().Shape(it.ID); err == nil {
			bg = v.theme.pieceBG(shape.Color)
		}
		if it.ID == dragged {
			bg = v.theme.GhostBG
		}
		for _, c := range it.Matrix.Cells() {
			scr.FillRect(platformcore.NewRect(
				it.Rect.X+c.Col*trayCellW, it.Rect.Y+c.Row*trayCellH, trayCellW, trayCellH,
			), platformcore.Cell{Rune: ' ', BG: bg})
		}
	}
}

// tint sets the background of every cell in r, keeping runes and
// foregrounds.
func tint(scr *platformcore.Screen, r platformcore.Rect, bg platformcore.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c := scr.GetCell(x, y)
			c.BG = bg
			scr.SetCell(x, y, c)
		}
	}
}

// fit truncates s to at most n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
