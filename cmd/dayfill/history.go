package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show solved days and streaks",
	Long: `Display the most recent solved days with moves, hints and time, followed
by totals and the current streak.

Examples:
  dayfill history
  dayfill history --limit 30`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of days to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open progress database: %w", err)
	}
	defer store.Close()

	completions, err := store.Completions(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Solved days")
	fmt.Println()

	if len(completions) == 0 {
		fmt.Println("No solved days yet.")
		fmt.Println()
		fmt.Println("Run 'dayfill play' to start today's puzzle!")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Date", "Day", "Set", "Moves", "Hints", "Time")

	for _, c := range completions {
		weekday := ""
		if d, err := time.Parse(core.DateLayout, c.Date); err == nil {
			weekday = d.Format("Mon")
		}
		t.Row(c.Date, weekday, c.Catalog, strconv.Itoa(c.Moves), strconv.Itoa(c.Hints), formatDuration(c.Elapsed))
	}
	fmt.Println(t)
	fmt.Println()

	sum, err := store.Summary(time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Solved %d of %d started days\n", sum.Solved, sum.Started)
	if sum.Solved > 0 {
		fmt.Printf("Best time: %s  Average moves: %.1f  Hints used: %d\n",
			formatDuration(sum.BestElapsed), sum.AvgMoves, sum.HintsUsed)
	}
	fmt.Printf("Current streak: %d  Longest: %d\n", sum.CurrentStreak, sum.LongestStreak)
	return nil
}

// formatDuration renders mm:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
