// dayfill is a daily calendar puzzle for the terminal: cover every cell
// of the board with polyomino pieces except today's month, day and weekday.
//
// Usage:
//
//	dayfill play              - Play today's puzzle
//	dayfill menu              - Pick a date and piece set interactively
//	dayfill serve             - Start SSH server for remote play
//	dayfill shapes            - List piece sets and their pieces
//	dayfill show              - Print a saved board or share code
//	dayfill history           - Show solved days and streaks
//	dayfill export / import   - Move progress between machines
//	dayfill reset             - Delete saved progress
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.dayfill/configs/dayfill.yaml)
//	--db <path>      - Database path (default: from config)
//	--fps <rate>     - Tick rate for the interactive board
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/config"
	"github.com/vovakirdan/dayfill/internal/games/dayfill"
	"github.com/vovakirdan/dayfill/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagLogLevel string

	// Set by the root pre-run for every subcommand.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dayfill",
	Short: "Dayfill - a daily calendar puzzle in your terminal",
	Long: `Dayfill is a calendar puzzle: a board of month, day and weekday cells
and a set of polyomino pieces. Cover every cell except the three that
spell today's date.

Available commands:
  play     - Play a puzzle directly
  menu     - Interactive date and piece set picker
  serve    - Start SSH server for remote play
  shapes   - List piece sets
  show     - Print a saved board or share code
  history  - Solved days and streaks
  export   - Write progress to a file
  import   - Read progress from a file
  reset    - Delete saved progress

Examples:
  dayfill play
  dayfill play --date 2024-03-15
  dayfill menu
  dayfill serve --ssh :2323
  dayfill show --code <share code>`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate for the board (0 = default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}

// setup loads the config, applies flag overrides and registers extra
// piece sets before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger = logging.New(cfg.Log, os.Stderr)

	if cfg.Game.CatalogDir != "" {
		n, err := dayfill.RegisterCatalogDir(config.ExpandHome(cfg.Game.CatalogDir), logger)
		if err != nil {
			logger.Warn("cannot load piece sets", "dir", cfg.Game.CatalogDir, "error", err)
		} else if n > 0 {
			logger.Debug("piece sets loaded", "dir", cfg.Game.CatalogDir, "count", n)
		}
	}
	return nil
}
