// Package catalog loads piece catalogs from files.
// This package depends on core but core does not depend on catalog.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/catalog/formats"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// Set is a named, validated piece catalog.
type Set struct {
	ID       string
	Name     string
	Catalog  *core.Catalog
	Metadata map[string]string
	FilePath string
}

// Loader handles loading catalogs from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new catalog loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all catalog files. Files that fail
// to parse or validate are skipped. A missing root yields no catalogs.
// Returns sets sorted by ID.
func (l *Loader) LoadAll() ([]Set, error) {
	var sets []Set

	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		set, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		sets = append(sets, set)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(sets, func(i, j int) bool {
		return sets[i].ID < sets[j].ID
	})

	return sets, nil
}

// LoadFile loads and validates a single catalog file.
func (l *Loader) LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Set{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	cat, err := core.NewCatalog(parsed.Shapes)
	if err != nil {
		return Set{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return Set{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Catalog:  cat,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific catalog by ID.
func (l *Loader) LoadByID(id string) (Set, error) {
	sets, err := l.LoadAll()
	if err != nil {
		return Set{}, err
	}

	for _, s := range sets {
		if s.ID == id {
			return s, nil
		}
	}

	return Set{}, fmt.Errorf("catalog not found: %s", id)
}

// ListIDs returns all catalog IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	sets, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(sets))
	for i, s := range sets {
		ids[i] = s.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Catalog, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Catalog{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
