package core

import (
	"fmt"
	"strings"
)

// RenderASCII draws the ledger's board for debugging, tests and the CLI.
//
// Format, one 3-column cell per position:
//   - blocked: "   "
//   - target: '*' then the label, e.g. "*15"
//   - empty: the label, right-aligned
//   - occupied: the top piece id; contended cells get a trailing '!'
func RenderASCII(l *Ledger) string {
	var sb strings.Builder
	b := l.Board()
	g := l.Grid()

	covered, total := Progress(b, g)
	sb.WriteString(fmt.Sprintf("%s | placed %d/%d | cells %d/%d\n",
		g.Target(), l.PlacedCount(), l.Catalog().Len(), covered, total))

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cellText(b, g, P(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cellText returns the fixed-width text for one cell.
func cellText(b *Board, g *Grid, p Position) string {
	o := b.Get(p)
	switch {
	case o.State == StateBlocked:
		return "   "
	case o.Count > 1:
		return fmt.Sprintf("%-2s!", string(o.PieceID))
	case o.Count == 1:
		return fmt.Sprintf("%-3s", string(o.PieceID))
	case o.State == StateTarget:
		return fmt.Sprintf("*%-2s", shortLabel(g.Label(p), 2))
	default:
		return fmt.Sprintf("%3s", shortLabel(g.Label(p), 3))
	}
}

func shortLabel(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// RenderBoardCompact renders occupancy as one line: '#' covered, '.'
// empty playable, '*' target, ' ' blocked. Used for comparisons.
func RenderBoardCompact(b *Board) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			o := b.Get(P(r, c))
			switch {
			case o.State == StateBlocked:
				sb.WriteByte(' ')
			case o.Count > 0:
				sb.WriteByte('#')
			case o.State == StateTarget:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
