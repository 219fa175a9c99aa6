package core

import (
	"fmt"
	"time"
)

// SnapshotEntry is one placed piece in a solution snapshot.
type SnapshotEntry struct {
	PieceID   ShapeID `json:"pieceId" yaml:"pieceId"`
	AnchorRow int     `json:"anchorRow" yaml:"anchorRow"`
	AnchorCol int     `json:"anchorCol" yaml:"anchorCol"`
	Rotation  int     `json:"rotation" yaml:"rotation"`
	FlipH     bool    `json:"flipH" yaml:"flipH"`
	FlipV     bool    `json:"flipV" yaml:"flipV"`
}

// Snapshot is a serializable board state: the date and the placements in
// stack order. Replaying it reproduces the same occupancy.
type Snapshot struct {
	Date   string          `json:"date" yaml:"date"`
	Pieces []SnapshotEntry `json:"pieces" yaml:"pieces"`
}

// ParseDate parses the snapshot date.
func (s Snapshot) ParseDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("snapshot: bad date %q: %w", s.Date, err)
	}
	return t, nil
}

// TakeSnapshot records the ledger's placements in ascending stack order.
func TakeSnapshot(l *Ledger, date time.Time) Snapshot {
	placed := l.Placed()
	snap := Snapshot{
		Date:   date.Format(DateLayout),
		Pieces: make([]SnapshotEntry, 0, len(placed)),
	}
	for _, pp := range placed {
		snap.Pieces = append(snap.Pieces, SnapshotEntry{
			PieceID:   pp.PieceID,
			AnchorRow: pp.Anchor.Row,
			AnchorCol: pp.Anchor.Col,
			Rotation:  int(pp.Orientation.Rotation),
			FlipH:     pp.Orientation.FlipH,
			FlipV:     pp.Orientation.FlipV,
		})
	}
	return snap
}

// Replay applies snapshot entries to a ledger through SetOrientation and
// Place, in order. It stops at the first failing entry.
func Replay(l *Ledger, snap Snapshot) error {
	for i, e := range snap.Pieces {
		rot, err := ParseRotation(e.Rotation)
		if err != nil {
			return fmt.Errorf("snapshot: entry %d (%s): %w", i, e.PieceID, err)
		}
		o := Orientation{Rotation: rot, FlipH: e.FlipH, FlipV: e.FlipV}
		if err := l.SetOrientation(e.PieceID, o); err != nil {
			return fmt.Errorf("snapshot: entry %d (%s): %w", i, e.PieceID, err)
		}
		if err := l.Place(e.PieceID, P(e.AnchorRow, e.AnchorCol)); err != nil {
			return fmt.Errorf("snapshot: entry %d (%s): %w", i, e.PieceID, err)
		}
	}
	return nil
}
