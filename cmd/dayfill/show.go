package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/codec"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/registry"
	"github.com/vovakirdan/dayfill/internal/storage"
)

var (
	flagShowCode string
	flagShowFile string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a board as text",
	Long: `Print a board: the saved progress for --date, a share code, or a
snapshot file written by 'dayfill export --date'.

Target cells are marked with '*'. Cells covered by more than one piece
show a trailing '!'.

Examples:
  dayfill show                      # today's saved board
  dayfill show --date 2024-03-15
  dayfill show --code H4sIAAAA...
  dayfill show --file board.yaml`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagDate, "date", "", "Date of the saved board YYYY-MM-DD (default: today)")
	showCmd.Flags().StringVar(&flagShowCode, "code", "", "Share code to decode")
	showCmd.Flags().StringVar(&flagShowFile, "file", "", "Snapshot file (JSON or YAML)")
	showCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Piece set id (default: saved set or config)")
	showCmd.MarkFlagsMutuallyExclusive("code", "file", "date")
}

func runShow(_ *cobra.Command, _ []string) error {
	snap, catalogID, err := loadSnapshot()
	if err != nil {
		return err
	}
	if flagCatalog != "" {
		catalogID = flagCatalog
	}
	if catalogID == "" {
		catalogID = cfg.Game.Catalog
	}

	out, err := renderSnapshot(snap, catalogID)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// loadSnapshot reads the board named by the flags. The catalog id is
// known only for boards read from the store.
func loadSnapshot() (core.Snapshot, string, error) {
	switch {
	case flagShowCode != "":
		snap, err := codec.DecodeShareCode(flagShowCode)
		return snap, "", err

	case flagShowFile != "":
		data, err := os.ReadFile(flagShowFile)
		if err != nil {
			return core.Snapshot{}, "", err
		}
		snap, err := codec.Unmarshal(data, codec.FormatForPath(flagShowFile))
		return snap, "", err
	}

	date, err := parseDate(flagDate)
	if err != nil {
		return core.Snapshot{}, "", err
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return core.Snapshot{}, "", err
	}
	defer store.Close()

	key := date.Format(core.DateLayout)
	p, err := store.LoadProgress(key)
	if err != nil {
		return core.Snapshot{}, "", err
	}
	if p == nil {
		// Nothing saved yet: show the empty board for that date.
		return core.Snapshot{Date: key}, "", nil
	}
	return p.Snapshot, p.Catalog, nil
}

// renderSnapshot replays snap onto a fresh board and draws it.
func renderSnapshot(snap core.Snapshot, catalogID string) (string, error) {
	catalog, err := registry.Get(catalogID)
	if err != nil {
		return "", err
	}
	date, err := snap.ParseDate()
	if err != nil {
		return "", err
	}

	layout := core.DefaultLayout()
	target, err := core.TargetForDate(layout, date)
	if err != nil {
		return "", err
	}
	grid, err := core.NewGrid(layout, target)
	if err != nil {
		return "", err
	}
	ledger := core.NewLedger(catalog, grid)
	if err := core.Replay(ledger, snap); err != nil {
		var perr *core.PlacementError
		if errors.As(err, &perr) {
			return "", fmt.Errorf("board does not fit piece set %q: %w", catalogID, err)
		}
		return "", err
	}

	out := core.RenderASCII(ledger)
	if core.IsSolved(ledger.Board(), grid) {
		out += "solved\n"
	}
	return out, nil
}
