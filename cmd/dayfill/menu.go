package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a date and piece set picker",
	Long: `Start dayfill in interactive menu mode.

Pick a date and a piece set, play, and return to the menu. Days you have
started or solved are marked. The history screen lists solved days.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change date or piece set
  T               - Jump to today
  Enter/Space     - Select
  Tab             - History
  Q               - Quit

Examples:
  dayfill menu
  dayfill menu --db ./dayfill.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	fileLogger, closer, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(fileLogger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunApp(tui.AppOptions{
		Config: cfg,
		Store:  store,
		Logger: fileLogger,
	}, runtimeConfig())
}
