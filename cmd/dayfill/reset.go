package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/storage"
)

var (
	flagAll bool
	flagYes bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress",
	Long: `With --date, deletes the saved board for that day so it starts fresh.
Solved days stay on record.

With --all, deletes every saved board, solved day and move. This cannot
be undone; export first if in doubt. Requires --yes.

Examples:
  dayfill reset --date 2024-03-15
  dayfill reset --all --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagDate, "date", "", "Delete the saved board for this date (YYYY-MM-DD)")
	resetCmd.Flags().BoolVar(&flagAll, "all", false, "Delete all progress, solved days and moves")
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm --all")
}

func runReset(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open progress database: %w", err)
	}
	defer store.Close()

	msg, err := resetProgress(store, flagDate, flagAll, flagYes)
	if err != nil {
		return err
	}
	logger.Info("reset", "date", flagDate, "all", flagAll)
	fmt.Println(msg)
	return nil
}

func resetProgress(store *storage.Store, date string, all, yes bool) (string, error) {
	switch {
	case all && date != "":
		return "", errors.New("use either --date or --all, not both")
	case all:
		if !yes {
			return "", errors.New("--all deletes every saved board and solved day; add --yes to confirm")
		}
		if err := store.ClearData(); err != nil {
			return "", err
		}
		return "Deleted all progress", nil
	case date != "":
		t, err := parseDate(date)
		if err != nil {
			return "", err
		}
		key := t.Format(core.DateLayout)
		if err := store.DeleteProgress(key); err != nil {
			return "", err
		}
		return "Deleted saved board for " + key, nil
	default:
		return "", errors.New("nothing to reset: give --date or --all")
	}
}
