package dayfill

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// Selected returns the selected piece id, or "".
func (s *Session) Selected() core.ShapeID { return s.selected }

// Select marks a piece as the target of keyboard actions.
func (s *Session) Select(id core.ShapeID) error {
	if _, err := s.ledger.Piece(id); err != nil {
		return err
	}
	s.selected = id
	s.ledger.SetSelected(id)
	return nil
}

// Deselect clears the selection.
func (s *Session) Deselect() {
	s.selected = ""
	s.ledger.SetSelected("")
}

// SelectNext cycles the selection through all pieces; dir is +1 or -1.
func (s *Session) SelectNext(dir int) core.ShapeID {
	ids := s.catalog.IDs()
	if len(ids) == 0 {
		return ""
	}
	i := -1
	for k, id := range ids {
		if id == s.selected {
			i = k
			break
		}
	}
	switch {
	case i < 0 && dir < 0:
		i = len(ids) - 1
	case i < 0:
		i = 0
	default:
		i = ((i+dir)%len(ids) + len(ids)) % len(ids)
	}
	s.selected = ids[i]
	s.ledger.SetSelected(s.selected)
	return s.selected
}

// Place puts an unplaced piece on the board at anchor.
func (s *Session) Place(id core.ShapeID, anchor core.Position) error {
	if err := s.ensurePlaying(); err != nil {
		return err
	}
	pi, err := s.ledger.Piece(id)
	if err != nil {
		return err
	}
	if err := s.ledger.Place(id, anchor); err != nil {
		s.reject("place", id, err)
		return err
	}
	pp, _ := s.ledger.Placement(id)
	s.logger.Debug("piece placed", "piece", id, "anchor", anchor, "stack", pp.Stack)
	s.record(Move{Kind: MovePlace, PieceID: id, To: anchor, Before: pi.Orientation, After: pi.Orientation})
	s.checkWin()
	return nil
}

// MoveTo re-places a placed piece at a new anchor.
func (s *Session) MoveTo(id core.ShapeID, anchor core.Position) error {
	if err := s.ensurePlaying(); err != nil {
		return err
	}
	pi, err := s.ledger.Piece(id)
	if err != nil {
		return err
	}
	from := pi.Anchor
	before, _ := s.ledger.Placement(id)
	if err := s.ledger.Move(id, anchor); err != nil {
		s.reject("move", id, err)
		return err
	}
	pp, _ := s.ledger.Placement(id)
	s.logger.Debug("piece moved", "piece", id, "from", from, "to", anchor, "stack", pp.Stack)
	s.record(Move{Kind: MoveShift, PieceID: id, From: from, To: anchor, Before: pi.Orientation, After: pi.Orientation, Stack: before.Stack})
	s.checkWin()
	return nil
}

// PlaceOrMove places an unplaced piece or moves a placed one.
func (s *Session) PlaceOrMove(id core.ShapeID, anchor core.Position) error {
	pi, err := s.ledger.Piece(id)
	if err != nil {
		return err
	}
	if pi.Placed {
		if pi.Anchor == anchor {
			return nil
		}
		return s.MoveTo(id, anchor)
	}
	return s.Place(id, anchor)
}

// Remove sends a placed piece back to storage.
func (s *Session) Remove(id core.ShapeID) error {
	if err := s.ensurePlaying(); err != nil {
		return err
	}
	pi, err := s.ledger.Piece(id)
	if err != nil {
		return err
	}
	pp, _ := s.ledger.Placement(id)
	if err := s.ledger.Remove(id); err != nil {
		s.reject("remove", id, err)
		return err
	}
	s.logger.Debug("piece removed", "piece", id, "from", pi.Anchor)
	s.record(Move{Kind: MoveRemove, PieceID: id, From: pi.Anchor, Before: pi.Orientation, After: pi.Orientation, Stack: pp.Stack})
	s.checkWin()
	return nil
}

// Rotate turns a piece clockwise.
func (s *Session) Rotate(id core.ShapeID) error {
	return s.transform(id, MoveRotate, s.ledger.Rotate)
}

// FlipH mirrors a piece left to right.
func (s *Session) FlipH(id core.ShapeID) error {
	return s.transform(id, MoveFlipH, s.ledger.FlipHorizontal)
}

// FlipV mirrors a piece top to bottom.
func (s *Session) FlipV(id core.ShapeID) error {
	return s.transform(id, MoveFlipV, s.ledger.FlipVertical)
}

func (s *Session) transform(id core.ShapeID, kind MoveKind, apply func(core.ShapeID) error) error {
	if err := s.ensurePlaying(); err != nil {
		return err
	}
	before, err := s.ledger.Piece(id)
	if err != nil {
		return err
	}
	if err := apply(id); err != nil {
		s.reject(string(kind), id, err)
		return err
	}
	after, _ := s.ledger.Piece(id)
	s.logger.Debug("piece transformed", "piece", id, "kind", kind, "orientation", after.Orientation)
	s.record(Move{
		Kind:    kind,
		PieceID: id,
		From:    before.Anchor,
		To:      after.Anchor,
		Before:  before.Orientation,
		After:   after.Orientation,
	})
	if after.Placed {
		s.checkWin()
	}
	return nil
}

// reject logs a refused mutation and queues a warning notice.
func (s *Session) reject(op string, id core.ShapeID, err error) {
	s.logger.Debug("move rejected", "op", op, "piece", id, "error", err)
	var text string
	switch {
	case errors.Is(err, core.ErrInvalidPlacement):
		text = fmt.Sprintf("%s does not fit there", id)
	case errors.Is(err, core.ErrRotationRejected):
		text = fmt.Sprintf("%s cannot rotate here", id)
	case errors.Is(err, core.ErrFlipRejected):
		text = fmt.Sprintf("%s cannot flip here", id)
	case errors.Is(err, core.ErrAlreadyPlaced):
		text = fmt.Sprintf("%s is already on the board", id)
	case errors.Is(err, core.ErrNotPlaced):
		text = fmt.Sprintf("%s is not on the board", id)
	default:
		text = err.Error()
	}
	s.notify(NoticeWarning, text)
}

// AvailablePositions lists anchors where the piece's current orientation
// would be accepted.
func (s *Session) AvailablePositions(id core.ShapeID) ([]core.Position, error) {
	return s.ledger.AvailablePositions(id)
}

// Hint is a suggested placement.
type Hint struct {
	PieceID core.ShapeID
	Anchor  core.Position
}

// Hint suggests an anchor for the first unplaced piece that has one where
// it fits entirely on uncovered cells, falling back to any fully on-board
// anchor. The hint is not applied.
func (s *Session) Hint() (Hint, error) {
	if err := s.ensurePlaying(); err != nil {
		return Hint{}, err
	}
	if s.hintLimit < 0 || (s.hintLimit > 0 && s.stats.HintsUsed >= s.hintLimit) {
		s.notify(NoticeWarning, "No hints left")
		return Hint{}, &core.PlacementError{Code: core.CodeNoHint, Message: "hint limit reached"}
	}

	board := s.ledger.Board()
	var fallback *Hint
	for _, id := range s.ledger.Unplaced() {
		m, err := s.ledger.Matrix(id)
		if err != nil {
			return Hint{}, err
		}
		anchors, err := s.ledger.AvailablePositions(id)
		if err != nil {
			return Hint{}, err
		}
		for _, a := range anchors {
			if !core.FitsEntirely(m, a, s.grid) {
				continue
			}
			if fallback == nil {
				fallback = &Hint{PieceID: id, Anchor: a}
			}
			if coversOnlyEmpty(board, core.Footprint(m, a)) {
				return s.useHint(Hint{PieceID: id, Anchor: a}), nil
			}
		}
	}
	if fallback != nil {
		return s.useHint(*fallback), nil
	}
	s.notify(NoticeInfo, "No placement to suggest")
	return Hint{}, &core.PlacementError{Code: core.CodeNoHint, Message: "no valid placement"}
}

func (s *Session) useHint(h Hint) Hint {
	s.stats.HintsUsed++
	s.logger.Debug("hint", "piece", h.PieceID, "anchor", h.Anchor, "used", s.stats.HintsUsed)
	s.notify(NoticeInfo, fmt.Sprintf("Try %s at %v", h.PieceID, h.Anchor))
	return h
}

func coversOnlyEmpty(b *core.Board, cells []core.Position) bool {
	for _, p := range cells {
		if b.IsOccupied(p) {
			return false
		}
	}
	return true
}
