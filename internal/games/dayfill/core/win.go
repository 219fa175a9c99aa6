package core

// Occupancy answers whether a cell is covered by any piece.
type Occupancy interface {
	IsOccupied(p Position) bool
}

// IsSolved reports whether the three date targets are empty and every
// other non-blocked cell is covered.
func IsSolved(occ Occupancy, g *Grid) bool {
	for _, p := range g.Target().Positions() {
		if occ.IsOccupied(p) {
			return false
		}
	}
	for _, p := range g.Positions() {
		if g.IsBlocked(p) || g.IsTarget(p) {
			continue
		}
		if !occ.IsOccupied(p) {
			return false
		}
	}
	return true
}

// Progress returns how many playable cells are covered out of the total.
func Progress(occ Occupancy, g *Grid) (covered, total int) {
	for _, p := range g.PlayablePositions() {
		total++
		if occ.IsOccupied(p) {
			covered++
		}
	}
	return covered, total
}
