package core

import "time"

// DateLayout is the canonical date format used for snapshots and storage keys.
const DateLayout = "2006-01-02"

// DateTarget names the three reserved cells that must stay empty for a date.
type DateTarget struct {
	Month   int // 1-12
	Day     int // 1-31
	Weekday int // ISO, Monday=1 .. Sunday=7

	MonthPos   Position
	DayPos     Position
	WeekdayPos Position
}

// NewDateTarget resolves date components to board positions.
// Out-of-range components return a *DateError wrapping ErrInvalidDateTarget.
func NewDateTarget(layout Layout, month, day, weekday int) (DateTarget, error) {
	if month < 1 || month > 12 {
		return DateTarget{}, &DateError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	if day < 1 || day > 31 {
		return DateTarget{}, &DateError{Field: "day", Value: day, Min: 1, Max: 31}
	}
	if weekday < 1 || weekday > 7 {
		return DateTarget{}, &DateError{Field: "weekday", Value: weekday, Min: 1, Max: 7}
	}

	return DateTarget{
		Month:      month,
		Day:        day,
		Weekday:    weekday,
		MonthPos:   layout.Months[month-1],
		DayPos:     layout.Days[day-1],
		WeekdayPos: layout.Weekdays[weekday-1],
	}, nil
}

// TargetForDate computes the target for a calendar date.
func TargetForDate(layout Layout, t time.Time) (DateTarget, error) {
	return NewDateTarget(layout, int(t.Month()), t.Day(), ISOWeekday(t))
}

// ISOWeekday converts Go's Sunday-first weekday to Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Positions returns the three target cells: month, day, weekday.
func (d DateTarget) Positions() [3]Position {
	return [3]Position{d.MonthPos, d.DayPos, d.WeekdayPos}
}

// Contains returns true if pos is one of the target cells.
func (d DateTarget) Contains(pos Position) bool {
	return pos == d.MonthPos || pos == d.DayPos || pos == d.WeekdayPos
}

// String returns a short human label such as "Fri Mar 15".
func (d DateTarget) String() string {
	return WeekdayLabel(d.Weekday) + " " + MonthLabel(d.Month) + " " + DayLabel(d.Day)
}
