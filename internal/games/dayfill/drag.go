package dayfill

import (
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// DropZone is where a drag started or ended.
type DropZone int

const (
	ZoneNone DropZone = iota
	ZoneBoard
	ZoneStorage
)

func (z DropZone) String() string {
	switch z {
	case ZoneBoard:
		return "board"
	case ZoneStorage:
		return "storage"
	default:
		return "none"
	}
}

// DragStart describes a new drag. Offset is the pointer position relative
// to the piece's top-left cell, in the same units as Metrics.
type DragStart struct {
	PieceID core.ShapeID
	Offset  core.Point
	Origin  DropZone
	Metrics core.BoardMetrics
}

// DragSession is the transient state between drag start and drag end.
type DragSession struct {
	PieceID core.ShapeID
	Offset  core.Point
	Origin  DropZone
	Metrics core.BoardMetrics
	Pointer core.Point
	Snap    *core.Position
	Valid   bool
}

// DragPreview is what the renderer needs to draw a drag in progress.
type DragPreview struct {
	PieceID core.ShapeID
	Pointer core.Point
	Snap    core.Snap
	Cells   []core.Position // footprint at the snapped anchor
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool { return s.drag != nil }

// Drag returns a copy of the drag state.
func (s *Session) Drag() (DragSession, bool) {
	if s.drag == nil {
		return DragSession{}, false
	}
	d := *s.drag
	if d.Snap != nil {
		p := *d.Snap
		d.Snap = &p
	}
	return d, true
}

// StartDrag begins dragging a piece. Any previous drag is dropped.
func (s *Session) StartDrag(start DragStart) error {
	if err := s.ensurePlaying(); err != nil {
		return err
	}
	if _, err := s.ledger.Piece(start.PieceID); err != nil {
		return err
	}
	s.CancelDrag()
	s.drag = &DragSession{
		PieceID: start.PieceID,
		Offset:  start.Offset,
		Origin:  start.Origin,
		Metrics: start.Metrics,
	}
	s.selected = start.PieceID
	s.ledger.SetSelected(start.PieceID)
	s.ledger.SetDragging(start.PieceID)
	s.logger.Debug("drag start", "piece", start.PieceID, "origin", start.Origin)
	return nil
}

// UpdateDrag resolves the pointer to a snap and stores it for preview.
// It never mutates the ledger.
func (s *Session) UpdateDrag(pointer core.Point) (DragPreview, bool) {
	if s.drag == nil {
		return DragPreview{}, false
	}
	m, err := s.ledger.Matrix(s.drag.PieceID)
	if err != nil {
		return DragPreview{}, false
	}
	snap := core.ResolveDropCell(pointer, s.drag.Offset, m, s.drag.Metrics, s.grid, s.drag.Snap)
	s.drag.Pointer = pointer
	if snap.OK {
		cell := snap.Cell
		s.drag.Snap = &cell
	} else {
		s.drag.Snap = nil
	}
	s.drag.Valid = snap.OK && snap.Valid
	return s.preview(m, snap), true
}

// Preview returns the current drag preview without re-resolving.
func (s *Session) Preview() (DragPreview, bool) {
	if s.drag == nil {
		return DragPreview{}, false
	}
	m, err := s.ledger.Matrix(s.drag.PieceID)
	if err != nil {
		return DragPreview{}, false
	}
	snap := core.Snap{Valid: s.drag.Valid}
	if s.drag.Snap != nil {
		snap.Cell = *s.drag.Snap
		snap.OK = true
	}
	return s.preview(m, snap), true
}

func (s *Session) preview(m core.Matrix, snap core.Snap) DragPreview {
	p := DragPreview{PieceID: s.drag.PieceID, Pointer: s.drag.Pointer, Snap: snap}
	if snap.OK {
		p.Cells = core.Footprint(m, snap.Cell)
	}
	return p
}

// EndDrag drops the piece on the board. A nil pointer uses the last
// resolved snap. It returns true when the ledger changed. A drop that
// lands entirely off the board is a no-op; a drop on an anchor the
// validator refuses returns ErrInvalidPlacement. The drag ends either way.
func (s *Session) EndDrag(pointer *core.Point) (bool, error) {
	if s.drag == nil {
		return false, nil
	}
	if pointer != nil {
		s.UpdateDrag(*pointer)
	}
	d := s.finishDrag()

	if d.Snap == nil {
		s.logger.Debug("drag cancelled", "piece", d.PieceID, "reason", "off board")
		return false, nil
	}
	anchor := *d.Snap
	pi, err := s.ledger.Piece(d.PieceID)
	if err != nil {
		return false, err
	}
	if pi.Placed && pi.Anchor == anchor {
		return false, nil
	}
	if err := s.PlaceOrMove(d.PieceID, anchor); err != nil {
		return false, err
	}
	return true, nil
}

// DropToStorage ends the drag over the piece tray. A placed piece is
// removed; an unplaced one just goes back.
func (s *Session) DropToStorage() (bool, error) {
	if s.drag == nil {
		return false, nil
	}
	d := s.finishDrag()
	pi, err := s.ledger.Piece(d.PieceID)
	if err != nil {
		return false, err
	}
	if !pi.Placed {
		return false, nil
	}
	if err := s.Remove(d.PieceID); err != nil {
		return false, err
	}
	return true, nil
}

// CancelDrag abandons the drag without touching the ledger.
func (s *Session) CancelDrag() {
	if s.drag == nil {
		return
	}
	d := s.finishDrag()
	s.logger.Debug("drag cancelled", "piece", d.PieceID)
}

func (s *Session) finishDrag() DragSession {
	d := *s.drag
	s.drag = nil
	s.ledger.SetDragging("")
	return d
}
