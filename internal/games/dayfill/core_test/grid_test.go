package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

func TestDefaultGridPartition(t *testing.T) {
	g := gridFor(t, march15)

	assert.Equal(t, 6, g.CountKind(core.KindBlocked))
	assert.Equal(t, 50, g.CountKind(core.KindReserved))
	assert.Equal(t, 0, g.CountKind(core.KindFree))
	assert.Len(t, g.Positions(), 56)
	assert.Len(t, g.PlayablePositions(), 47)
}

func TestGridInBounds(t *testing.T) {
	g := gridFor(t, march15)

	testCases := []struct {
		pos      core.Position
		expected bool
	}{
		{core.P(0, 0), true},
		{core.P(7, 6), true},
		{core.P(-1, 0), false},
		{core.P(0, -1), false},
		{core.P(8, 0), false},
		{core.P(0, 7), false},
	}

	for _, tc := range testCases {
		if got := g.IsInBounds(tc.pos); got != tc.expected {
			t.Errorf("IsInBounds(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}

	assert.Equal(t, core.KindOutside, g.CellAt(core.P(-1, 3)).Kind)
	assert.False(t, g.IsBlocked(core.P(9, 9)))
	assert.False(t, g.IsPlayable(core.P(9, 9)))
}

func TestGridLabels(t *testing.T) {
	g := gridFor(t, march15)

	testCases := []struct {
		pos   core.Position
		label string
		kind  core.LabelKind
		value int
	}{
		{core.P(0, 0), "Jan", core.LabelMonth, 1},
		{core.P(1, 5), "Dec", core.LabelMonth, 12},
		{core.P(2, 0), "1", core.LabelDay, 1},
		{core.P(5, 6), "28", core.LabelDay, 28},
		{core.P(6, 2), "31", core.LabelDay, 31},
		{core.P(6, 3), "Sun", core.LabelWeekday, 7},
		{core.P(6, 4), "Mon", core.LabelWeekday, 1},
		{core.P(7, 5), "Fri", core.LabelWeekday, 5},
		{core.P(7, 6), "Sat", core.LabelWeekday, 6},
		{core.P(0, 6), "", core.LabelNone, 0},
	}

	for _, tc := range testCases {
		cell := g.CellAt(tc.pos)
		if cell.Label != tc.label || cell.LabelKind != tc.kind || cell.Value != tc.value {
			t.Errorf("at %v: got (%q, %v, %d), expected (%q, %v, %d)",
				tc.pos, cell.Label, cell.LabelKind, cell.Value, tc.label, tc.kind, tc.value)
		}
	}
}

func TestTargetForMarch15(t *testing.T) {
	target, err := core.TargetForDate(core.DefaultLayout(), march15)
	require.NoError(t, err)

	assert.Equal(t, 3, target.Month)
	assert.Equal(t, 15, target.Day)
	assert.Equal(t, 5, target.Weekday)
	assert.Equal(t, core.P(0, 2), target.MonthPos)
	assert.Equal(t, core.P(4, 0), target.DayPos)
	assert.Equal(t, core.P(7, 5), target.WeekdayPos)
	assert.Equal(t, "Fri Mar 15", target.String())

	g := gridFor(t, march15)
	for _, p := range target.Positions() {
		assert.True(t, g.IsTarget(p), "%v should be a target", p)
		assert.True(t, g.IsReserved(p), "%v should stay reserved", p)
		assert.False(t, g.IsPlayable(p), "%v should not be playable", p)
	}
	assert.False(t, g.IsTarget(core.P(0, 3)))
}

func TestISOWeekday(t *testing.T) {
	testCases := []struct {
		date     time.Time
		expected int
	}{
		{time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 5},
		{time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), 6},
		{time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), 7},
	}
	for _, tc := range testCases {
		if got := core.ISOWeekday(tc.date); got != tc.expected {
			t.Errorf("ISOWeekday(%s) = %d, expected %d", tc.date.Format(core.DateLayout), got, tc.expected)
		}
	}
}

func TestNewDateTargetRejectsOutOfRange(t *testing.T) {
	testCases := []struct {
		name                string
		month, day, weekday int
		field               string
	}{
		{"month zero", 0, 1, 1, "month"},
		{"month 13", 13, 1, 1, "month"},
		{"day zero", 1, 0, 1, "day"},
		{"day 32", 1, 32, 1, "day"},
		{"weekday zero", 1, 1, 0, "weekday"},
		{"weekday 8", 1, 1, 8, "weekday"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewDateTarget(core.DefaultLayout(), tc.month, tc.day, tc.weekday)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidDateTarget))

			var de *core.DateError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestLayoutValidation(t *testing.T) {
	t.Run("overlap", func(t *testing.T) {
		layout := core.DefaultLayout()
		layout.Days[0] = layout.Months[0]
		target, err := core.NewDateTarget(layout, 3, 15, 5)
		require.NoError(t, err)
		_, err = core.NewGrid(layout, target)
		assert.Error(t, err)
	})

	t.Run("out of bounds", func(t *testing.T) {
		layout := core.DefaultLayout()
		layout.Blocked = append(layout.Blocked, core.P(8, 0))
		target, err := core.NewDateTarget(layout, 3, 15, 5)
		require.NoError(t, err)
		_, err = core.NewGrid(layout, target)
		assert.Error(t, err)
	})

	t.Run("uncovered cells are free", func(t *testing.T) {
		layout := core.DefaultLayout()
		layout.Blocked = layout.Blocked[:5]
		target, err := core.NewDateTarget(layout, 3, 15, 5)
		require.NoError(t, err)
		g, err := core.NewGrid(layout, target)
		require.NoError(t, err)
		assert.Equal(t, 1, g.CountKind(core.KindFree))
		assert.Equal(t, core.KindFree, g.CellAt(core.P(7, 3)).Kind)
		assert.True(t, g.IsPlayable(core.P(7, 3)))
		assert.Len(t, g.PlayablePositions(), 48)
	})
}
