package dayfill

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/catalog"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/registry"
)

// ClassicCatalogID names the built-in 14-piece set.
const ClassicCatalogID = "classic"

func init() {
	registry.Register(ClassicCatalogID, "Classic (14 pieces)", core.DefaultCatalog())
}

// RegisterCatalogDir loads every catalog file under dir into the registry.
// Sets whose id is already taken are skipped with a warning. It returns
// the number of catalogs added.
func RegisterCatalogDir(dir string, logger *log.Logger) (int, error) {
	sets, err := catalog.NewLoader(dir).LoadAll()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, set := range sets {
		if err := registry.Add(set.ID, set.Name, set.FilePath, set.Catalog); err != nil {
			if logger != nil {
				logger.Warn("catalog skipped", "id", set.ID, "file", set.FilePath, "error", err)
			}
			continue
		}
		added++
		if logger != nil {
			logger.Debug("catalog registered", "id", set.ID, "pieces", set.Catalog.Len(), "file", set.FilePath)
		}
	}
	return added, nil
}
