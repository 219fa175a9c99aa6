package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dayfill.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			CellWidth:  5,
			CellHeight: 2,
			GapX:       1,
			GapY:       0,
			Theme:      "default",
		},
		Game: GameConfig{
			Catalog:            "classic",
			CatalogDir:         "~/.dayfill/catalogs",
			Assist:             AssistNormal,
			Autosave:           true,
			NoticeTTL:          4 * time.Second,
			HintLimit:          3,
			HighlightConflicts: true,
			PreviewValidity:    true,
		},
		Storage: StorageConfig{
			DBPath: "~/.dayfill/dayfill.db",
		},
		Log: LogConfig{
			Level:      "info",
			File:       "~/.dayfill/dayfill.log",
			Timestamps: true,
		},
		Server: ServerConfig{
			Address:     ":2323",
			HostKeyPath: ".ssh/dayfill_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
