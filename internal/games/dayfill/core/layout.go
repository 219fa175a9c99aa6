// Package core implements the dayfill calendar puzzle engine: the board
// partition, shape transforms, placement rules, the placement ledger,
// drag snapping and win detection.
//
// The package has no UI or storage dependencies. The platform layer reads
// state from a Session and feeds input back through its methods.
package core

import "fmt"

// Board dimensions.
const (
	Rows = 8
	Cols = 7
)

// Layout holds the static position tables that partition the board.
// Months, Days and Weekdays are indexed by value-1. Weekdays use ISO
// numbering: Monday=1 through Sunday=7. The classic layout names all 56
// cells; any cell left out of the tables is an ordinary free cell.
type Layout struct {
	Blocked  []Position
	Months   [12]Position
	Days     [31]Position
	Weekdays [7]Position
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DefaultLayout returns the classic calendar board.
//
//	Jan Feb Mar Apr May Jun  ##
//	Jul Aug Sep Oct Nov Dec  ##
//	  1   2   3   4   5   6   7
//	  8   9  10  11  12  13  14
//	 15  16  17  18  19  20  21
//	 22  23  24  25  26  27  28
//	 29  30  31 Sun Mon Tue Wed
//	 ##  ##  ##  ## Thu Fri Sat
func DefaultLayout() Layout {
	var l Layout
	l.Blocked = []Position{P(0, 6), P(1, 6), P(7, 0), P(7, 1), P(7, 2), P(7, 3)}

	for i := 0; i < 12; i++ {
		l.Months[i] = P(i/6, i%6)
	}
	for i := 0; i < 28; i++ {
		l.Days[i] = P(2+i/7, i%7)
	}
	l.Days[28] = P(6, 0)
	l.Days[29] = P(6, 1)
	l.Days[30] = P(6, 2)

	l.Weekdays = [7]Position{
		P(6, 4), // Mon
		P(6, 5), // Tue
		P(6, 6), // Wed
		P(7, 4), // Thu
		P(7, 5), // Fri
		P(7, 6), // Sat
		P(6, 3), // Sun
	}
	return l
}

// MonthLabel returns the display label for a month number (1-12).
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return "?"
	}
	return monthLabels[month-1]
}

// WeekdayLabel returns the display label for an ISO weekday (1-7).
func WeekdayLabel(weekday int) string {
	if weekday < 1 || weekday > 7 {
		return "?"
	}
	return weekdayLabels[weekday-1]
}

// DayLabel returns the display label for a day of month.
func DayLabel(day int) string {
	return fmt.Sprintf("%d", day)
}

// validate checks that the tables are in bounds and disjoint.
// Cells not named by any table are free cells.
func (l Layout) validate() error {
	seen := make(map[Position]string, Rows*Cols)
	claim := func(p Position, what string) error {
		if p.Row < 0 || p.Row >= Rows || p.Col < 0 || p.Col >= Cols {
			return fmt.Errorf("layout: %s at %v is out of bounds", what, p)
		}
		if prev, ok := seen[p]; ok {
			return fmt.Errorf("layout: %s at %v overlaps %s", what, p, prev)
		}
		seen[p] = what
		return nil
	}

	for _, p := range l.Blocked {
		if err := claim(p, "blocked cell"); err != nil {
			return err
		}
	}
	for i, p := range l.Months {
		if err := claim(p, "month "+MonthLabel(i+1)); err != nil {
			return err
		}
	}
	for i, p := range l.Days {
		if err := claim(p, "day "+DayLabel(i+1)); err != nil {
			return err
		}
	}
	for i, p := range l.Weekdays {
		if err := claim(p, "weekday "+WeekdayLabel(i+1)); err != nil {
			return err
		}
	}
	return nil
}
