// Package registry provides a global registry of named piece catalogs.
// The built-in set registers itself in init(); catalogs loaded from files
// are added at startup, so commands can look a set up by name without
// knowing where it came from.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// CatalogInfo contains metadata about a registered catalog.
type CatalogInfo struct {
	ID     string
	Title  string
	Pieces int
	Cells  int
	Source string // "builtin" or a file path
}

type entry struct {
	info    CatalogInfo
	catalog *core.Catalog
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a built-in catalog. Typically called from init().
// Panics if a catalog with the same ID is already registered.
func Register(id, title string, c *core.Catalog) {
	if err := Add(id, title, "builtin", c); err != nil {
		panic(err.Error())
	}
}

// Add registers a catalog loaded at runtime.
// Returns an error if the ID is taken.
func Add(id, title, source string, c *core.Catalog) error {
	if id == "" || c == nil {
		return fmt.Errorf("registry: catalog needs an id and shapes")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		return fmt.Errorf("registry: catalog %q already registered", id)
	}

	entries[id] = entry{
		info: CatalogInfo{
			ID:     id,
			Title:  title,
			Pieces: c.Len(),
			Cells:  c.TotalCells(),
			Source: source,
		},
		catalog: c,
	}
	return nil
}

// List returns information about all registered catalogs, sorted by ID.
func List() []CatalogInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CatalogInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a catalog by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (*core.Catalog, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown catalog %q", id)
	}

	return e.catalog, nil
}

// Exists checks if a catalog with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
