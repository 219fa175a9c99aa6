package core

import (
	"fmt"
	"strings"
)

// Matrix is a row-major occupancy mask. true marks an occupied sub-cell.
type Matrix [][]bool

// ParseMatrix builds a matrix from rows of '#' (occupied) and '.' (empty).
// Any other rune is treated as empty.
func ParseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, line := range rows {
		m[r] = make([]bool, 0, len(line))
		for _, ch := range line {
			m[r] = append(m[r], ch == '#')
		}
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of the first row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Count returns the number of occupied sub-cells.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Cells returns the local offsets of all occupied sub-cells in row-major order.
func (m Matrix) Cells() []Position {
	out := make([]Position, 0, m.Count())
	for r, row := range m {
		for c, v := range row {
			if v {
				out = append(out, P(r, c))
			}
		}
	}
	return out
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two matrices have identical dimensions and contents.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix in the '#'/'.' notation accepted by ParseMatrix.
func (m Matrix) String() string {
	var sb strings.Builder
	for r, row := range m {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// validate checks the matrix is non-empty, rectangular and has no blank rows.
func (m Matrix) validate() error {
	if len(m) == 0 || len(m[0]) == 0 {
		return fmt.Errorf("shape is empty")
	}
	width := len(m[0])
	for r, row := range m {
		if len(row) != width {
			return fmt.Errorf("row %d has width %d, expected %d", r, len(row), width)
		}
		blank := true
		for _, v := range row {
			if v {
				blank = false
				break
			}
		}
		if blank {
			return fmt.Errorf("row %d has no occupied cells", r)
		}
	}
	return nil
}

// Rotation is a clockwise rotation in degrees: 0, 90, 180 or 270.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// Next returns the rotation advanced by 90 degrees.
func (r Rotation) Next() Rotation {
	return (r + 90) % 360
}

// Valid returns true for the four supported angles.
func (r Rotation) Valid() bool {
	return r == Rot0 || r == Rot90 || r == Rot180 || r == Rot270
}

// ParseRotation validates an angle read from a snapshot or file.
func ParseRotation(deg int) (Rotation, error) {
	r := Rotation(deg)
	if !r.Valid() {
		return Rot0, fmt.Errorf("rotation %d is not one of 0, 90, 180, 270", deg)
	}
	return r, nil
}

// Orientation is the transform state of a piece.
type Orientation struct {
	Rotation Rotation `json:"rotation" yaml:"rotation"`
	FlipH    bool     `json:"flipH" yaml:"flipH"`
	FlipV    bool     `json:"flipV" yaml:"flipV"`
}

// key returns a dense index in [0,16) for orientation caching.
func (o Orientation) key() int {
	k := int(o.Rotation/90) * 4
	if o.FlipH {
		k += 1
	}
	if o.FlipV {
		k += 2
	}
	return k
}

// String returns a compact form like "90/H".
func (o Orientation) String() string {
	s := fmt.Sprintf("%d", o.Rotation)
	if o.FlipH || o.FlipV {
		s += "/"
		if o.FlipH {
			s += "H"
		}
		if o.FlipV {
			s += "V"
		}
	}
	return s
}

// Transform applies flips then clockwise rotations. The order is fixed:
// horizontal flip (reverse each row), vertical flip (reverse row order),
// then rot/90 quarter turns where result[c][R-1-r] = input[r][c].
// The input is never modified.
func Transform(m Matrix, rot Rotation, flipH, flipV bool) Matrix {
	out := m.Clone()

	if flipH {
		for _, row := range out {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	}

	if flipV {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	turns := (int(rot) / 90) % 4
	if turns < 0 {
		turns += 4
	}
	for i := 0; i < turns; i++ {
		out = rotateCW(out)
	}
	return out
}

// rotateCW turns an R×C matrix into a C×R matrix, 90 degrees clockwise.
func rotateCW(m Matrix) Matrix {
	rows := m.Rows()
	cols := m.Cols()
	out := make(Matrix, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]bool, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = m[r][c]
		}
	}
	return out
}

// Orient is Transform driven by an Orientation.
func Orient(m Matrix, o Orientation) Matrix {
	return Transform(m, o.Rotation, o.FlipH, o.FlipV)
}
