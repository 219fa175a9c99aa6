package core

// CellKind is the static category of a board cell.
type CellKind uint8

const (
	KindFree CellKind = iota
	KindBlocked
	KindReserved
	KindOutside // only returned for out-of-bounds queries
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case KindFree:
		return "free"
	case KindBlocked:
		return "blocked"
	case KindReserved:
		return "reserved"
	case KindOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// LabelKind tells which table a reserved cell came from.
type LabelKind uint8

const (
	LabelNone LabelKind = iota
	LabelMonth
	LabelDay
	LabelWeekday
)

// Cell is the static description of a board cell.
type Cell struct {
	Pos       Position
	Kind      CellKind
	LabelKind LabelKind
	Label     string
	Value     int // month, day or weekday number for reserved cells
}

// Grid is the static board partition for one game: cell kinds, labels
// and the active date target. It never changes after construction.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	cells  [Rows * Cols]Cell
	target DateTarget
}

// NewGrid builds a grid from the layout tables and the active target.
func NewGrid(layout Layout, target DateTarget) (*Grid, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	g := &Grid{target: target}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			g.cells[index(P(r, c))] = Cell{Pos: P(r, c), Kind: KindFree}
		}
	}

	for _, p := range layout.Blocked {
		g.cells[index(p)] = Cell{Pos: p, Kind: KindBlocked}
	}
	for i, p := range layout.Months {
		g.cells[index(p)] = Cell{Pos: p, Kind: KindReserved, LabelKind: LabelMonth, Label: MonthLabel(i + 1), Value: i + 1}
	}
	for i, p := range layout.Days {
		g.cells[index(p)] = Cell{Pos: p, Kind: KindReserved, LabelKind: LabelDay, Label: DayLabel(i + 1), Value: i + 1}
	}
	for i, p := range layout.Weekdays {
		g.cells[index(p)] = Cell{Pos: p, Kind: KindReserved, LabelKind: LabelWeekday, Label: WeekdayLabel(i + 1), Value: i + 1}
	}

	return g, nil
}

// index converts a position to a flat array index.
func index(p Position) int {
	return p.Row*Cols + p.Col
}

// IsInBounds returns true if the position is on the board.
func (g *Grid) IsInBounds(p Position) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// CellAt returns the cell at p. Out-of-bounds positions yield KindOutside.
func (g *Grid) CellAt(p Position) Cell {
	if !g.IsInBounds(p) {
		return Cell{Pos: p, Kind: KindOutside}
	}
	return g.cells[index(p)]
}

// IsBlocked returns true if p is a permanently unusable cell.
func (g *Grid) IsBlocked(p Position) bool {
	return g.IsInBounds(p) && g.cells[index(p)].Kind == KindBlocked
}

// IsReserved returns true if p carries a month, day or weekday label.
func (g *Grid) IsReserved(p Position) bool {
	return g.IsInBounds(p) && g.cells[index(p)].Kind == KindReserved
}

// IsTarget returns true if p is one of the three active date targets.
func (g *Grid) IsTarget(p Position) bool {
	return g.IsInBounds(p) && g.target.Contains(p)
}

// IsPlayable returns true if a piece may cover p.
func (g *Grid) IsPlayable(p Position) bool {
	return g.IsInBounds(p) && !g.IsBlocked(p) && !g.IsTarget(p)
}

// Label returns the static label of p, or "" for unlabeled cells.
func (g *Grid) Label(p Position) string {
	return g.CellAt(p).Label
}

// Target returns the active date target.
func (g *Grid) Target() DateTarget {
	return g.target
}

// Positions returns every board position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			out = append(out, P(r, c))
		}
	}
	return out
}

// PlayablePositions returns every cell that must be covered to win.
func (g *Grid) PlayablePositions() []Position {
	out := make([]Position, 0, Rows*Cols)
	for _, p := range g.Positions() {
		if g.IsPlayable(p) {
			out = append(out, p)
		}
	}
	return out
}

// CountKind returns how many cells have the given kind.
func (g *Grid) CountKind(k CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}
