package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	platformcore "github.com/vovakirdan/dayfill/internal/core"
)

// cellStyle is the part of a cell that affects escape sequences.
type cellStyle struct {
	fg, bg platformcore.Color
	bold   bool
}

func (cs cellStyle) lipgloss() lipgloss.Style {
	style := lipgloss.NewStyle()
	if !cs.fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(cs.fg))
	}
	if !cs.bg.IsDefault() {
		style = style.Background(lipgloss.Color(cs.bg))
	}
	if cs.bold {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *platformcore.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG, bold: cell.Bold}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = start.lipgloss()
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
