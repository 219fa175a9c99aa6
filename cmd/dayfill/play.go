package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dayfill/internal/config"
	platformcore "github.com/vovakirdan/dayfill/internal/core"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/logging"
	"github.com/vovakirdan/dayfill/internal/platform/tui"
	"github.com/vovakirdan/dayfill/internal/registry"
	"github.com/vovakirdan/dayfill/internal/storage"
)

var (
	flagDate    string
	flagCatalog string
	flagAssist  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Start the puzzle for today or for --date. Saved progress for that
date is resumed.

Controls:
  Arrows/WASD    - Move cursor
  Tab/Shift+Tab  - Select next/previous piece
  Enter/Space    - Place or move the selected piece
  X              - Remove piece
  R / F / V      - Rotate / flip horizontally / flip vertically
  U              - Undo
  H              - Hint
  P              - Pause
  C              - Show share code
  Ctrl+R         - Clear the board
  Mouse          - Drag pieces between tray and board, right click rotates
  Q/Ctrl+C       - Quit

Assist presets:
  easy    - unlimited hints, conflicts and invalid drops highlighted
  normal  - 3 hints, highlights on
  hard    - no hints, no highlights

Examples:
  dayfill play
  dayfill play --date 2024-02-29
  dayfill play --catalog my-set --assist hard`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDate, "date", "", "Puzzle date YYYY-MM-DD (default: today)")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Piece set id (default: from config)")
	playCmd.Flags().StringVar(&flagAssist, "assist", "", "Assist preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	date, err := parseDate(flagDate)
	if err != nil {
		return err
	}
	if err := applyAssist(flagAssist); err != nil {
		return err
	}

	catalogID := flagCatalog
	if catalogID == "" {
		catalogID = cfg.Game.Catalog
	}
	if !registry.Exists(catalogID) {
		return fmt.Errorf("unknown piece set %q (run 'dayfill shapes' to list them)", catalogID)
	}

	fileLogger, closer, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(fileLogger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.GameOptions{
		Date:      date,
		CatalogID: catalogID,
		Config:    cfg,
		Store:     store,
		Logger:    fileLogger,
	}, runtimeConfig())
}

// parseDate reads a YYYY-MM-DD flag value; empty means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(core.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// applyAssist overrides the configured assist preset.
func applyAssist(s string) error {
	if s == "" {
		return nil
	}
	preset, err := config.ParseAssistPreset(s)
	if err != nil {
		return err
	}
	config.ApplyAssistPreset(&cfg, preset)
	return nil
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() platformcore.RuntimeConfig {
	rt := platformcore.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt = rt.WithSize(w, h)
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return rt
}

// interactiveLogger writes to the configured log file so log lines do not
// tear the full-screen board.
func interactiveLogger() (*log.Logger, io.Closer, error) {
	return logging.OpenFile(cfg.Log)
}

// openStore opens the progress database. Play continues without saving
// when it cannot be opened.
func openStore(l *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		l.Warn("could not open progress database", "path", cfg.Storage.DBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		return nil
	}
	return store
}
