package core

// CellState is the dynamic state of a board cell.
type CellState uint8

const (
	StateEmpty CellState = iota
	StateOccupied
	StateTarget  // active date target, must stay empty
	StateBlocked // never usable
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateOccupied:
		return "occupied"
	case StateTarget:
		return "target"
	case StateBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Occupant is one board cell in the occupancy view.
type Occupant struct {
	State   CellState
	PieceID ShapeID // top piece when occupied
	Stack   int     // stack index of the top piece
	Count   int     // number of pieces covering the cell
}

// Board is the derived occupancy view: the grid with placed pieces stamped
// on in stack order. It is rebuilt from scratch on every ledger mutation.
type Board struct {
	grid  *Grid
	cells [Rows * Cols]Occupant
}

// NewBoard returns an empty board for the grid.
func NewBoard(g *Grid) *Board {
	b := &Board{grid: g}
	for _, p := range g.Positions() {
		st := StateEmpty
		switch {
		case g.IsBlocked(p):
			st = StateBlocked
		case g.IsTarget(p):
			st = StateTarget
		}
		b.cells[index(p)] = Occupant{State: st}
	}
	return b
}

// stamp writes a piece onto its in-bounds cells. A target cell keeps its
// StateTarget marker but records the occupant so win checks can see it.
func (b *Board) stamp(pp *PlacedPiece) {
	for _, p := range pp.Cells {
		if !b.grid.IsInBounds(p) || b.grid.IsBlocked(p) {
			continue
		}
		o := &b.cells[index(p)]
		o.Count++
		o.PieceID = pp.PieceID
		o.Stack = pp.Stack
		if o.State == StateEmpty {
			o.State = StateOccupied
		}
	}
}

// Grid returns the static grid the board was built on.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Get returns the occupant at p. Out-of-bounds positions read as blocked.
func (b *Board) Get(p Position) Occupant {
	if !b.grid.IsInBounds(p) {
		return Occupant{State: StateBlocked}
	}
	return b.cells[index(p)]
}

// IsOccupied returns true if at least one piece covers p.
func (b *Board) IsOccupied(p Position) bool {
	return b.Get(p).Count > 0
}

// OccupiedCount returns the number of covered cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, o := range b.cells {
		if o.Count > 0 {
			n++
		}
	}
	return n
}

// EmptyPlayable returns playable cells no piece covers, in row-major order.
func (b *Board) EmptyPlayable() []Position {
	var out []Position
	for _, p := range b.grid.PlayablePositions() {
		if !b.IsOccupied(p) {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy sharing the immutable grid.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal returns true if two boards have the same occupancy.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}
