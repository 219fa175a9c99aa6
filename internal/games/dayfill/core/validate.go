package core

// MinValidRatio is the share of a piece that must land on playable cells.
const MinValidRatio = 0.5

// PlacementReport is the cell-by-cell breakdown behind a validation verdict.
type PlacementReport struct {
	Total     int  // occupied sub-cells
	Valid     int  // sub-cells in bounds, not blocked, not a target
	OffBoard  int  // sub-cells outside the board
	Forbidden bool // some in-bounds sub-cell hits a blocked or target cell
}

// Ratio returns Valid/Total, or 0 for an empty shape.
func (r PlacementReport) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Valid) / float64(r.Total)
}

// OK applies the tolerance rule to the report.
func (r PlacementReport) OK() bool {
	if r.Total == 0 || r.Forbidden {
		return false
	}
	return r.Ratio() >= MinValidRatio
}

// Fits reports whether every sub-cell is on a playable cell.
func (r PlacementReport) Fits() bool {
	return r.Total > 0 && !r.Forbidden && r.OffBoard == 0
}

// Inspect classifies each occupied sub-cell of m anchored at anchor.
// Other pieces are not considered: overlap is legal.
func Inspect(m Matrix, anchor Position, g *Grid) PlacementReport {
	var rep PlacementReport
	for r, row := range m {
		for c, v := range row {
			if !v {
				continue
			}
			rep.Total++
			pos := anchor.Add(r, c)
			switch {
			case !g.IsInBounds(pos):
				rep.OffBoard++
			case g.IsBlocked(pos) || g.IsTarget(pos):
				rep.Forbidden = true
			default:
				rep.Valid++
			}
		}
	}
	return rep
}

// Validate decides whether m may be placed at anchor. Any sub-cell on a
// blocked or target cell rejects outright; otherwise at least half the
// piece must land on playable cells.
func Validate(m Matrix, anchor Position, g *Grid) bool {
	return Inspect(m, anchor, g).OK()
}

// FitsEntirely is the strict check used when transforming a placed piece:
// every sub-cell must be in bounds and on a playable cell.
func FitsEntirely(m Matrix, anchor Position, g *Grid) bool {
	return Inspect(m, anchor, g).Fits()
}

// Footprint returns the absolute positions of m's occupied sub-cells.
func Footprint(m Matrix, anchor Position) []Position {
	local := m.Cells()
	for i, p := range local {
		local[i] = anchor.Offset(p)
	}
	return local
}
