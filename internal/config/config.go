// Package config provides YAML-based configuration loading and assist
// presets for dayfill.
package config

import (
	"fmt"
	"time"
)

// Config contains all dayfill configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig defines how the board is drawn in the terminal.
type BoardConfig struct {
	CellWidth  int    `yaml:"cell_width"`  // terminal columns per cell
	CellHeight int    `yaml:"cell_height"` // terminal lines per cell
	GapX       int    `yaml:"gap_x"`
	GapY       int    `yaml:"gap_y"`
	Theme      string `yaml:"theme"` // default or mono
}

// GameConfig defines gameplay options.
type GameConfig struct {
	Catalog    string        `yaml:"catalog"`     // registry id of the piece set
	CatalogDir string        `yaml:"catalog_dir"` // extra YAML catalogs, loaded at startup
	Assist     AssistPreset  `yaml:"assist"`
	Autosave   bool          `yaml:"autosave"`
	NoticeTTL  time.Duration `yaml:"notice_ttl"`

	// Set by the assist preset unless it is "custom".
	HintLimit          int  `yaml:"hint_limit"` // 0 unlimited, negative disabled
	HighlightConflicts bool `yaml:"highlight_conflicts"`
	PreviewValidity    bool `yaml:"preview_validity"`
}

// StorageConfig defines where progress is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // used by interactive commands
	Timestamps bool   `yaml:"timestamps"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks values the rest of the program relies on.
func (c Config) Validate() error {
	if c.Board.CellWidth < 1 || c.Board.CellHeight < 1 {
		return fmt.Errorf("config: board cells must be at least 1x1, got %dx%d", c.Board.CellWidth, c.Board.CellHeight)
	}
	if c.Board.GapX < 0 || c.Board.GapY < 0 {
		return fmt.Errorf("config: board gaps must not be negative")
	}
	switch c.Board.Theme {
	case "", "default", "mono":
	default:
		return fmt.Errorf("config: unknown board theme %q (default, mono)", c.Board.Theme)
	}
	if c.Game.Catalog == "" {
		return fmt.Errorf("config: game.catalog is empty")
	}
	if _, err := ParseAssistPreset(string(c.Game.Assist)); err != nil {
		return err
	}
	return nil
}
