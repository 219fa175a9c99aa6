package core

import "fmt"

// ShapeID identifies a piece in a catalog.
type ShapeID string

// Shape is an immutable piece definition.
type Shape struct {
	ID     ShapeID
	Name   string
	Matrix Matrix
	Color  string // hex such as "#FF6B6B"
}

// Size returns the number of cells the piece covers.
func (s Shape) Size() int {
	return s.Matrix.Count()
}

// Catalog is an ordered, immutable set of shapes with every orientation
// precomputed. It is safe for concurrent readers.
type Catalog struct {
	shapes   []Shape
	byID     map[ShapeID]int
	oriented [][16]Matrix
}

// NewCatalog validates the shapes and precomputes their orientations.
func NewCatalog(shapes []Shape) (*Catalog, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("catalog: no shapes")
	}

	c := &Catalog{
		shapes:   make([]Shape, len(shapes)),
		byID:     make(map[ShapeID]int, len(shapes)),
		oriented: make([][16]Matrix, len(shapes)),
	}

	for i, s := range shapes {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog: shape %d has no id", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate shape id %q", s.ID)
		}
		if err := s.Matrix.validate(); err != nil {
			return nil, fmt.Errorf("catalog: shape %q: %w", s.ID, err)
		}

		s.Matrix = s.Matrix.Clone()
		if s.Name == "" {
			s.Name = string(s.ID)
		}
		c.shapes[i] = s
		c.byID[s.ID] = i

		for _, rot := range []Rotation{Rot0, Rot90, Rot180, Rot270} {
			for _, fh := range []bool{false, true} {
				for _, fv := range []bool{false, true} {
					o := Orientation{Rotation: rot, FlipH: fh, FlipV: fv}
					c.oriented[i][o.key()] = Orient(s.Matrix, o)
				}
			}
		}
	}

	return c, nil
}

// MustCatalog is NewCatalog for static definitions; it panics on error.
func MustCatalog(shapes []Shape) *Catalog {
	c, err := NewCatalog(shapes)
	if err != nil {
		panic(err)
	}
	return c
}

// Shape looks up a definition by id.
func (c *Catalog) Shape(id ShapeID) (Shape, error) {
	i, ok := c.byID[id]
	if !ok {
		return Shape{}, newPlacementError(CodeUnknownShape, id, "not in catalog")
	}
	s := c.shapes[i]
	s.Matrix = s.Matrix.Clone()
	return s, nil
}

// Oriented returns the memoized transform of a shape. Callers must not
// modify the returned matrix.
func (c *Catalog) Oriented(id ShapeID, o Orientation) (Matrix, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, newPlacementError(CodeUnknownShape, id, "not in catalog")
	}
	if !o.Rotation.Valid() {
		return nil, fmt.Errorf("catalog: %s: invalid rotation %d", id, o.Rotation)
	}
	return c.oriented[i][o.key()], nil
}

// Shapes returns the definitions in catalog order.
func (c *Catalog) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// IDs returns shape ids in catalog order.
func (c *Catalog) IDs() []ShapeID {
	out := make([]ShapeID, len(c.shapes))
	for i, s := range c.shapes {
		out[i] = s.ID
	}
	return out
}

// Len returns the number of shapes.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// TotalCells returns the summed area of all shapes.
func (c *Catalog) TotalCells() int {
	n := 0
	for _, s := range c.shapes {
		n += s.Size()
	}
	return n
}

// DefaultCatalog returns the classic 14-piece set covering 47 cells,
// exactly the playable area of the classic layout.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

var defaultCatalog = MustCatalog([]Shape{
	{ID: "L1", Name: "L-3", Color: "#FF6B6B", Matrix: ParseMatrix("#.", "#.", "##")},
	{ID: "L2", Name: "Corner A", Color: "#4ECDC4", Matrix: ParseMatrix("#.", "##")},
	{ID: "L3", Name: "Corner B", Color: "#45B7D1", Matrix: ParseMatrix("##", "#.")},
	{ID: "I1", Name: "Bar 5", Color: "#96CEB4", Matrix: ParseMatrix("#####")},
	{ID: "I2", Name: "Bar 4", Color: "#FFEAA7", Matrix: ParseMatrix("####")},
	{ID: "I3", Name: "Bar 3", Color: "#DDA0DD", Matrix: ParseMatrix("###")},
	{ID: "I4", Name: "Bar 2", Color: "#98D8C8", Matrix: ParseMatrix("##")},
	{ID: "T1", Name: "Plus", Color: "#F7DC6F", Matrix: ParseMatrix(".#.", "###", ".#.")},
	{ID: "T2", Name: "Tee", Color: "#AED6F1", Matrix: ParseMatrix(".#.", "###")},
	{ID: "Z1", Name: "Zig", Color: "#F1948A", Matrix: ParseMatrix("##.", ".##")},
	{ID: "Z2", Name: "Step", Color: "#85C1E9", Matrix: ParseMatrix("##", ".#")},
	{ID: "P1", Name: "Square", Color: "#F8C471", Matrix: ParseMatrix("##", "##")},
	{ID: "O1", Name: "Dot", Color: "#D7DBDD", Matrix: ParseMatrix("#")},
	{ID: "S1", Name: "Domino", Color: "#C39BD3", Matrix: ParseMatrix("##")},
})
