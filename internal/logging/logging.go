// Package logging builds charmbracelet loggers from the log config.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/config"
)

// Prefix is the default logger prefix.
const Prefix = "dayfill"

// New creates a logger writing to w. Unknown levels fall back to info.
func New(cfg config.LogConfig, w io.Writer) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.Kitchen,
		Prefix:          Prefix,
		Level:           level,
	})
}

// OpenFile creates a logger appending to cfg.File. The returned closer
// must be called when done. An empty file path discards output.
func OpenFile(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		return New(cfg, io.Discard), io.NopCloser(nil), nil
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(cfg, f), f, nil
}
