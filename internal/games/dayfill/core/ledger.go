package core

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// PieceInstance is the per-session runtime state of one catalog piece.
type PieceInstance struct {
	ID          ShapeID
	Orientation Orientation
	Placed      bool
	Anchor      Position // meaningful only when Placed
	Selected    bool
	Dragging    bool
}

// PlacedPiece is the ledger record of a piece on the board.
type PlacedPiece struct {
	PieceID     ShapeID
	Anchor      Position
	Orientation Orientation
	Footprint   []Position // every occupied sub-cell, possibly off-board
	Cells       []Position // the in-bounds part of Footprint
	Stack       int
}

func (pp PlacedPiece) clone() PlacedPiece {
	pp.Footprint = append([]Position(nil), pp.Footprint...)
	pp.Cells = append([]Position(nil), pp.Cells...)
	return pp
}

// Ledger tracks piece instances and placements for one game and derives
// board occupancy from them.
type Ledger struct {
	catalog *Catalog
	grid    *Grid

	pieces []PieceInstance // catalog order
	index  map[ShapeID]int
	placed map[ShapeID]*PlacedPiece

	nextStack int // monotonic, never reused
	board     *Board
}

// NewLedger creates an empty ledger with one unplaced instance per shape.
func NewLedger(catalog *Catalog, g *Grid) *Ledger {
	l := &Ledger{
		catalog: catalog,
		grid:    g,
		pieces:  make([]PieceInstance, 0, catalog.Len()),
		index:   make(map[ShapeID]int, catalog.Len()),
		placed:  make(map[ShapeID]*PlacedPiece),
	}
	for i, id := range catalog.IDs() {
		l.pieces = append(l.pieces, PieceInstance{ID: id})
		l.index[id] = i
	}
	l.rebuild()
	return l
}

// Grid returns the static grid.
func (l *Ledger) Grid() *Grid {
	return l.grid
}

// Catalog returns the shape catalog.
func (l *Ledger) Catalog() *Catalog {
	return l.catalog
}

// Board returns the current occupancy view. Treat it as read-only.
func (l *Ledger) Board() *Board {
	return l.board
}

func (l *Ledger) instance(id ShapeID) (*PieceInstance, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, newPlacementError(CodeUnknownShape, id, "not in catalog")
	}
	return &l.pieces[i], nil
}

// Piece returns a copy of the runtime state of a piece.
func (l *Ledger) Piece(id ShapeID) (PieceInstance, error) {
	p, err := l.instance(id)
	if err != nil {
		return PieceInstance{}, err
	}
	return *p, nil
}

// Pieces returns all piece instances in catalog order.
func (l *Ledger) Pieces() []PieceInstance {
	out := make([]PieceInstance, len(l.pieces))
	copy(out, l.pieces)
	return out
}

// Unplaced returns ids of pieces not on the board, in catalog order.
func (l *Ledger) Unplaced() []ShapeID {
	var out []ShapeID
	for _, p := range l.pieces {
		if !p.Placed {
			out = append(out, p.ID)
		}
	}
	return out
}

// Matrix returns the piece's shape in its current orientation.
func (l *Ledger) Matrix(id ShapeID) (Matrix, error) {
	p, err := l.instance(id)
	if err != nil {
		return nil, err
	}
	return l.catalog.Oriented(id, p.Orientation)
}

// Placement returns the ledger record for a placed piece.
func (l *Ledger) Placement(id ShapeID) (PlacedPiece, bool) {
	pp, ok := l.placed[id]
	if !ok {
		return PlacedPiece{}, false
	}
	return pp.clone(), true
}

// Placed returns all placements in ascending stack order.
func (l *Ledger) Placed() []PlacedPiece {
	out := make([]PlacedPiece, 0, len(l.placed))
	for _, pp := range l.placed {
		out = append(out, pp.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stack < out[j].Stack })
	return out
}

// PlacedCount returns the number of pieces on the board.
func (l *Ledger) PlacedCount() int {
	return len(l.placed)
}

// Place puts an unplaced piece on the board at anchor using its current
// orientation. The piece goes on top of the stack.
func (l *Ledger) Place(id ShapeID, anchor Position) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	if p.Placed {
		return newPlacementError(CodeAlreadyPlaced, id, "already on the board at %v", p.Anchor)
	}

	m, err := l.catalog.Oriented(id, p.Orientation)
	if err != nil {
		return err
	}
	if !Validate(m, anchor, l.grid) {
		return newPlacementError(CodeInvalidPlacement, id, "cannot place at %v", anchor)
	}

	l.commit(p, m, anchor)
	return nil
}

// Move re-places a piece that is already on the board. The move is
// validated before anything changes and the piece goes on top.
func (l *Ledger) Move(id ShapeID, anchor Position) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	if !p.Placed {
		return newPlacementError(CodeNotPlaced, id, "")
	}

	m, err := l.catalog.Oriented(id, p.Orientation)
	if err != nil {
		return err
	}
	if !Validate(m, anchor, l.grid) {
		return newPlacementError(CodeInvalidPlacement, id, "cannot move to %v", anchor)
	}

	delete(l.placed, id)
	l.commit(p, m, anchor)
	return nil
}

// commit records a validated placement and rebuilds occupancy.
func (l *Ledger) commit(p *PieceInstance, m Matrix, anchor Position) {
	l.nextStack++
	l.placed[p.ID] = newPlacedPiece(p.ID, m, anchor, p.Orientation, l.nextStack, l.grid)
	p.Placed = true
	p.Anchor = anchor
	l.rebuild()
}

func newPlacedPiece(id ShapeID, m Matrix, anchor Position, o Orientation, stack int, g *Grid) *PlacedPiece {
	fp := Footprint(m, anchor)
	cells := make([]Position, 0, len(fp))
	for _, pos := range fp {
		if g.IsInBounds(pos) {
			cells = append(cells, pos)
		}
	}
	return &PlacedPiece{
		PieceID:     id,
		Anchor:      anchor,
		Orientation: o,
		Footprint:   fp,
		Cells:       cells,
		Stack:       stack,
	}
}

// Remove takes a piece off the board.
func (l *Ledger) Remove(id ShapeID) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	if !p.Placed {
		return newPlacementError(CodeNotPlaced, id, "")
	}

	delete(l.placed, id)
	p.Placed = false
	p.Anchor = Position{}
	l.rebuild()
	return nil
}

// Restore puts a piece back on the board exactly as it was: orientation,
// anchor and stack index. The placement is checked with Validate, the rule
// it was accepted under, so a piece that once hung half off the board can
// return there. A stack index of zero or less takes a fresh top index.
func (l *Ledger) Restore(id ShapeID, anchor Position, o Orientation, stack int) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}

	m, err := l.catalog.Oriented(id, o)
	if err != nil {
		return err
	}
	if !Validate(m, anchor, l.grid) {
		return newPlacementError(CodeInvalidPlacement, id, "cannot restore at %v", anchor)
	}

	if stack <= 0 {
		l.nextStack++
		stack = l.nextStack
	} else if stack > l.nextStack {
		l.nextStack = stack
	}

	p.Orientation = o
	p.Placed = true
	p.Anchor = anchor
	l.placed[id] = newPlacedPiece(id, m, anchor, o, stack, l.grid)
	l.rebuild()
	return nil
}

// Rotate turns a piece 90 degrees clockwise. A placed piece stays at its
// anchor and keeps its stack index; if the turned shape would leave the
// board or hit a blocked or target cell, nothing changes and
// ErrRotationRejected is returned.
func (l *Ledger) Rotate(id ShapeID) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	next := p.Orientation
	next.Rotation = next.Rotation.Next()
	return l.reorient(p, next, CodeRotationRejected)
}

// FlipHorizontal mirrors a piece left to right. Same rules as Rotate.
func (l *Ledger) FlipHorizontal(id ShapeID) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	next := p.Orientation
	next.FlipH = !next.FlipH
	return l.reorient(p, next, CodeFlipRejected)
}

// FlipVertical mirrors a piece top to bottom. Same rules as Rotate.
func (l *Ledger) FlipVertical(id ShapeID) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	next := p.Orientation
	next.FlipV = !next.FlipV
	return l.reorient(p, next, CodeFlipRejected)
}

// SetOrientation sets a piece's orientation directly, with the same
// placed-piece check as Rotate.
func (l *Ledger) SetOrientation(id ShapeID, o Orientation) error {
	p, err := l.instance(id)
	if err != nil {
		return err
	}
	return l.reorient(p, o, CodeRotationRejected)
}

func (l *Ledger) reorient(p *PieceInstance, o Orientation, rejectCode ErrorCode) error {
	m, err := l.catalog.Oriented(p.ID, o)
	if err != nil {
		return err
	}

	if !p.Placed {
		p.Orientation = o
		return nil
	}

	if !FitsEntirely(m, p.Anchor, l.grid) {
		return newPlacementError(rejectCode, p.ID, "orientation %s does not fit at %v", o, p.Anchor)
	}

	old := l.placed[p.ID]
	p.Orientation = o
	l.placed[p.ID] = newPlacedPiece(p.ID, m, p.Anchor, o, old.Stack, l.grid)
	l.rebuild()
	return nil
}

// SetSelected marks exactly one piece selected, or none for "".
func (l *Ledger) SetSelected(id ShapeID) {
	for i := range l.pieces {
		l.pieces[i].Selected = l.pieces[i].ID == id
	}
}

// SetDragging flags the piece being dragged, or none for "".
func (l *Ledger) SetDragging(id ShapeID) {
	for i := range l.pieces {
		l.pieces[i].Dragging = l.pieces[i].ID == id
	}
}

// rebuild replays placements in ascending stack order onto a fresh board.
func (l *Ledger) rebuild() {
	b := NewBoard(l.grid)
	for _, pp := range l.stackOrder() {
		b.stamp(pp)
	}
	l.board = b
}

func (l *Ledger) stackOrder() []*PlacedPiece {
	out := make([]*PlacedPiece, 0, len(l.placed))
	for _, pp := range l.placed {
		out = append(out, pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stack < out[j].Stack })
	return out
}

// coverCounts counts how many placed pieces cover each cell index.
func (l *Ledger) coverCounts() *intmap.Map[int, int] {
	counts := intmap.New[int, int](Rows * Cols)
	for _, pp := range l.placed {
		for _, p := range pp.Cells {
			n, _ := counts.Get(index(p))
			counts.Put(index(p), n+1)
		}
	}
	return counts
}

// ContendedCells returns cells covered by two or more pieces, row-major.
// Overlap is legal; this is for display.
func (l *Ledger) ContendedCells() []Position {
	counts := l.coverCounts()
	var out []Position
	for _, p := range l.grid.Positions() {
		if n, ok := counts.Get(index(p)); ok && n >= 2 {
			out = append(out, p)
		}
	}
	return out
}

// InConflict reports whether any cell of a placed piece is contended.
func (l *Ledger) InConflict(id ShapeID) bool {
	pp, ok := l.placed[id]
	if !ok {
		return false
	}
	counts := l.coverCounts()
	for _, p := range pp.Cells {
		if n, _ := counts.Get(index(p)); n >= 2 {
			return true
		}
	}
	return false
}

// ConflictingPieces returns ids of placed pieces in conflict, in stack order.
func (l *Ledger) ConflictingPieces() []ShapeID {
	counts := l.coverCounts()
	var out []ShapeID
	for _, pp := range l.stackOrder() {
		for _, p := range pp.Cells {
			if n, _ := counts.Get(index(p)); n >= 2 {
				out = append(out, pp.PieceID)
				break
			}
		}
	}
	return out
}

// AvailablePositions lists every anchor where the piece, in its current
// orientation, would pass validation. Anchors range far enough off-board
// to include partially hanging placements.
func (l *Ledger) AvailablePositions(id ShapeID) ([]Position, error) {
	m, err := l.Matrix(id)
	if err != nil {
		return nil, err
	}
	var out []Position
	for r := -m.Rows() + 1; r < Rows; r++ {
		for c := -m.Cols() + 1; c < Cols; c++ {
			if Validate(m, P(r, c), l.grid) {
				out = append(out, P(r, c))
			}
		}
	}
	return out, nil
}
