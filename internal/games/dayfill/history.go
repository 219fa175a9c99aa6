package dayfill

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// MoveKind is the type of a recorded move.
type MoveKind string

const (
	MovePlace  MoveKind = "place"
	MoveRemove MoveKind = "remove"
	MoveShift  MoveKind = "move"
	MoveRotate MoveKind = "rotate"
	MoveFlipH  MoveKind = "flip_h"
	MoveFlipV  MoveKind = "flip_v"
)

// Move is one successful mutation, kept for undo and the move log.
type Move struct {
	ID      uuid.UUID
	Kind    MoveKind
	PieceID core.ShapeID
	From    core.Position // anchor before (remove, move)
	To      core.Position // anchor after (place, move)
	Before  core.Orientation
	After   core.Orientation
	Stack   int // stack index before (remove, move)
	At      time.Time
}

func (s *Session) record(m Move) {
	m.ID = uuid.New()
	m.At = s.clock()
	s.history = append(s.history, m)
	s.stats.Moves++
}

// History returns the moves made this game, oldest first.
func (s *Session) History() []Move {
	out := make([]Move, len(s.history))
	copy(out, s.history)
	return out
}

// Undo reverts the most recent move.
func (s *Session) Undo() error {
	if err := s.ensurePlaying(); err != nil {
		return err
	}
	if len(s.history) == 0 {
		return core.ErrNothingToUndo
	}

	last := s.history[len(s.history)-1]
	var err error
	switch last.Kind {
	case MovePlace:
		err = s.ledger.Remove(last.PieceID)
	case MoveRemove, MoveShift:
		err = s.ledger.Restore(last.PieceID, last.From, last.Before, last.Stack)
	case MoveRotate, MoveFlipH, MoveFlipV:
		if pp, ok := s.ledger.Placement(last.PieceID); ok {
			err = s.ledger.Restore(last.PieceID, pp.Anchor, last.Before, pp.Stack)
		} else {
			err = s.ledger.SetOrientation(last.PieceID, last.Before)
		}
	}
	if err != nil {
		s.logger.Warn("undo failed", "move", last.Kind, "piece", last.PieceID, "error", err)
		return err
	}

	s.history = s.history[:len(s.history)-1]
	s.logger.Debug("undo", "move", last.Kind, "piece", last.PieceID)
	s.notify(NoticeInfo, "Undid "+string(last.Kind)+" "+string(last.PieceID))
	s.checkWin()
	return nil
}
