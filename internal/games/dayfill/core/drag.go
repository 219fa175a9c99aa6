package core

import "math"

// Point is a continuous pointer coordinate in renderer units
// (pixels, or terminal columns and lines).
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// BoardMetrics describes where the board is drawn and how large a tile is.
// A tile is one cell plus the gap after it. Width and height are separate
// because terminal cells are not square.
type BoardMetrics struct {
	Origin     Point // top-left of cell (0,0)
	CellWidth  float64
	CellHeight float64
	GapX       float64
	GapY       float64
}

// SquareMetrics returns metrics with equal tile width and height.
func SquareMetrics(origin Point, cell, gap float64) BoardMetrics {
	return BoardMetrics{Origin: origin, CellWidth: cell, CellHeight: cell, GapX: gap, GapY: gap}
}

// TileWidth returns cell width plus horizontal gap.
func (m BoardMetrics) TileWidth() float64 {
	return m.CellWidth + m.GapX
}

// TileHeight returns cell height plus vertical gap.
func (m BoardMetrics) TileHeight() float64 {
	return m.CellHeight + m.GapY
}

// CellOrigin returns the renderer coordinate of a cell's top-left corner.
func (m BoardMetrics) CellOrigin(p Position) Point {
	return Point{
		X: m.Origin.X + float64(p.Col)*m.TileWidth(),
		Y: m.Origin.Y + float64(p.Row)*m.TileHeight(),
	}
}

// FloatAnchor converts a pointer and the pointer-to-anchor offset into a
// fractional board coordinate for the piece's top-left cell.
func FloatAnchor(pointer, offset Point, m BoardMetrics) (floatRow, floatCol float64) {
	floatCol = (pointer.X - offset.X - m.Origin.X) / m.TileWidth()
	floatRow = (pointer.Y - offset.Y - m.Origin.Y) / m.TileHeight()
	return floatRow, floatCol
}

// ScoreCandidate is the bilinear overlap of a unit tile at (row, col) with
// a unit tile at the fractional anchor.
func ScoreCandidate(floatRow, floatCol float64, row, col int) float64 {
	sx := math.Max(0, 1-math.Abs(floatCol-float64(col)))
	sy := math.Max(0, 1-math.Abs(floatRow-float64(row)))
	return sx * sy
}

// candidateOffsets is the evaluation order: the base cell, then its
// orthogonal neighbours, then the diagonals.
var candidateOffsets = [9]Position{
	{0, 0},
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// BestCandidate picks the highest-scoring cell in the 3×3 neighbourhood of
// floor(floatRow, floatCol). Ties keep the earlier candidate.
func BestCandidate(floatRow, floatCol float64) Position {
	base := P(int(math.Floor(floatRow)), int(math.Floor(floatCol)))
	best := base
	bestScore := -1.0
	for _, d := range candidateOffsets {
		cand := base.Offset(d)
		if s := ScoreCandidate(floatRow, floatCol, cand.Row, cand.Col); s > bestScore {
			best = cand
			bestScore = s
		}
	}
	return best
}

// Snap is the outcome of resolving a drag position.
type Snap struct {
	Cell    Position
	OK      bool // false when the piece would be entirely off the board
	Valid   bool // whether Place would accept Cell
	Changed bool // Cell/OK differ from the previous snap
}

// ResolveDropCell maps a continuous drag to a discrete anchor. The snap
// ignores the shape's footprint except to reject anchors where no sub-cell
// lands on the board. previous is the last snap, or nil.
func ResolveDropCell(pointer, offset Point, m Matrix, metrics BoardMetrics, g *Grid, previous *Position) Snap {
	fr, fc := FloatAnchor(pointer, offset, metrics)
	cell := BestCandidate(fr, fc)

	snap := Snap{Cell: cell}
	for _, p := range Footprint(m, cell) {
		if g.IsInBounds(p) {
			snap.OK = true
			break
		}
	}

	if snap.OK {
		snap.Valid = Validate(m, cell, g)
		snap.Changed = previous == nil || *previous != cell
	} else {
		snap.Changed = previous != nil
	}
	return snap
}
