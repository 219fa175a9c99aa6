package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/registry"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [set]",
	Short: "List piece sets, or the pieces of one set",
	Long: `Without an argument, shows every registered piece set: the built-in
classic set and any YAML sets found in game.catalog_dir.

With a set id, draws each piece of that set in its base orientation.

Examples:
  dayfill shapes
  dayfill shapes classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShapes,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runShapes(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return printShapes(args[0])
	}

	sets := registry.List()
	if len(sets) == 0 {
		fmt.Println("No piece sets available.")
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
		Headers("ID", "Title", "Pieces", "Cells", "Source")

	for _, s := range sets {
		t.Row(s.ID, s.Title, strconv.Itoa(s.Pieces), strconv.Itoa(s.Cells), s.Source)
	}

	fmt.Println(t)
	fmt.Println()
	fmt.Println("Run 'dayfill shapes <id>' to see the pieces of a set.")
	return nil
}

func printShapes(id string) error {
	catalog, err := registry.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d pieces, %d cells\n\n", id, catalog.Len(), catalog.TotalCells())
	for _, s := range catalog.Shapes() {
		name := s.Name
		if name == "" {
			name = string(s.ID)
		}
		fmt.Printf("%s  %s (%d)\n", lipgloss.NewStyle().Bold(true).Render(string(s.ID)), name, s.Size())
		fmt.Println(drawMatrix(s))
		fmt.Println()
	}
	return nil
}

// drawMatrix draws filled cells as two blocks in the piece colour.
func drawMatrix(s core.Shape) string {
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("██")
	var sb strings.Builder
	for r, row := range s.Matrix {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		for _, filled := range row {
			if filled {
				sb.WriteString(block)
			} else {
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}
