package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/codec"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/storage"
)

var (
	flagOut    string
	flagFormat string
	flagForce  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write progress to a file",
	Long: `Without --date, writes every saved board, solved day and move as one
JSON bundle that 'dayfill import' reads back.

With --date, writes only that day's board as a snapshot in JSON or YAML.

Examples:
  dayfill export --out dayfill-backup.json
  dayfill export --date 2024-03-15 --out board.yaml
  dayfill export --date 2024-03-15 --format yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Read progress from a file",
	Long: `Reads a bundle written by 'dayfill export', or a single-day snapshot.

A bundle replaces saved boards for the dates it contains and adds solved
days not already on record, all or nothing. A snapshot is checked
against the piece set and saved as the board for its date; an existing
board for that date is kept unless --force is given.

Examples:
  dayfill import dayfill-backup.json
  dayfill import board.yaml --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&flagDate, "date", "", "Export only this date's board (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&flagFormat, "format", "", "Snapshot format: json or yaml (default: from --out extension)")

	importCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Piece set for a snapshot (default: from config)")
	importCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing board for the snapshot's date")
}

func runExport(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open progress database: %w", err)
	}
	defer store.Close()

	var data []byte
	if flagDate == "" {
		data, err = store.ExportData()
	} else {
		data, err = exportSnapshot(store)
	}
	if err != nil {
		return err
	}

	if flagOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		return err
	}
	logger.Info("exported", "file", flagOut, "bytes", len(data))
	return nil
}

func exportSnapshot(store *storage.Store) ([]byte, error) {
	date, err := parseDate(flagDate)
	if err != nil {
		return nil, err
	}
	format := codec.FormatForPath(flagOut)
	if flagFormat != "" {
		if format, err = codec.ParseFormat(flagFormat); err != nil {
			return nil, err
		}
	}

	key := date.Format(core.DateLayout)
	p, err := store.LoadProgress(key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no saved board for %s", key)
	}
	return codec.Marshal(p.Snapshot, format)
}

// importProbe tells a bundle (which has a version) from a snapshot.
type importProbe struct {
	Version int `json:"version"`
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open progress database: %w", err)
	}
	defer store.Close()

	format := codec.FormatForPath(path)
	if format == codec.FormatJSON {
		var probe importProbe
		if err := sonic.Unmarshal(data, &probe); err == nil && probe.Version > 0 {
			n, err := store.ImportData(data)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d saved boards from %s\n", n, path)
			return nil
		}
	}

	snap, err := codec.Unmarshal(data, format)
	if err != nil {
		return err
	}
	return importSnapshot(store, snap)
}

func importSnapshot(store *storage.Store, snap core.Snapshot) error {
	catalogID := flagCatalog
	if catalogID == "" {
		catalogID = cfg.Game.Catalog
	}
	// Replaying validates the board against the piece set.
	board, err := renderSnapshot(snap, catalogID)
	if err != nil {
		return err
	}

	existing, err := store.LoadProgress(snap.Date)
	if err != nil {
		return err
	}
	if existing != nil && !flagForce {
		return fmt.Errorf("a board for %s is already saved (use --force to replace it)", snap.Date)
	}

	if err := store.SaveProgress(storage.Progress{
		Date:     snap.Date,
		Catalog:  catalogID,
		Snapshot: snap,
	}); err != nil {
		return err
	}
	fmt.Printf("Imported board for %s\n\n%s", snap.Date, board)
	return nil
}
