// Package formats provides piece catalog file parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// YAMLCatalog is the YAML structure of a catalog file.
type YAMLCatalog struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Pieces   []YAMLPiece       `yaml:"pieces"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPiece is one piece. Shape rows use '#' for filled and '.' for empty.
type YAMLPiece struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name,omitempty"`
	Color string   `yaml:"color,omitempty"`
	Shape []string `yaml:"shape"`
}

// Catalog is a parsed catalog file, not yet validated.
type Catalog struct {
	ID       string
	Name     string
	Shapes   []core.Shape
	Metadata map[string]string
}

// defaultColor is used for pieces without a color.
const defaultColor = "#D7DBDD"

// ParseYAML parses a YAML catalog file.
func ParseYAML(data []byte) (Catalog, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Catalog{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yc.ID == "" {
		return Catalog{}, fmt.Errorf("catalog has no id")
	}

	cat := Catalog{
		ID:       yc.ID,
		Name:     yc.Name,
		Shapes:   make([]core.Shape, 0, len(yc.Pieces)),
		Metadata: yc.Metadata,
	}
	if cat.Name == "" {
		cat.Name = yc.ID
	}

	for _, p := range yc.Pieces {
		color := p.Color
		if color == "" {
			color = defaultColor
		}
		cat.Shapes = append(cat.Shapes, core.Shape{
			ID:     core.ShapeID(p.ID),
			Name:   p.Name,
			Color:  color,
			Matrix: core.ParseMatrix(p.Shape...),
		})
	}

	return cat, nil
}

// EncodeYAML writes shapes back in the catalog file format.
func EncodeYAML(id, name string, shapes []core.Shape) ([]byte, error) {
	yc := YAMLCatalog{ID: id, Name: name}
	for _, s := range shapes {
		yc.Pieces = append(yc.Pieces, YAMLPiece{
			ID:    string(s.ID),
			Name:  s.Name,
			Color: s.Color,
			Shape: strings.Split(s.Matrix.String(), "\n"),
		})
	}
	data, err := yaml.Marshal(&yc)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
