package core

import "fmt"

// Position is a cell address on the board.
// Row increases downward, Col increases to the right.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Offset returns the sum of two positions.
func (p Position) Offset(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Equal returns true if two positions are the same.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

