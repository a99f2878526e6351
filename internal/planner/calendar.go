package planner

import (
	"time"

	"StudyPlanner/internal/models"
)

// CalendarCell is one day slot in the month grid.
type CalendarCell struct {
	Date        string // canonical YYYY-MM-DD
	Day         int    // day of month, for display
	InMonth     bool   // falls within the queried month
	IsToday     bool
	HasSchedule bool
}

// CalendarGridSize is the fixed number of cells in a month view:
// six full weeks of seven days.
const CalendarGridSize = 42

// CalendarCells lays out the month grid for year/month. The grid
// starts on the Sunday on or before the 1st and always spans exactly
// 42 cells, so trailing days of the previous month and leading days of
// the next fill the edges.
func CalendarCells(year int, month time.Month, schedules []models.Schedule, today string) []CalendarCell {
	scheduled := make(map[string]bool, len(schedules))
	for _, schedule := range schedules {
		scheduled[schedule.Date] = true
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]CalendarCell, 0, CalendarGridSize)
	for i := 0; i < CalendarGridSize; i++ {
		day := start.AddDate(0, 0, i)
		date := FormatDay(day)
		cells = append(cells, CalendarCell{
			Date:        date,
			Day:         day.Day(),
			InMonth:     day.Month() == month,
			IsToday:     date == today,
			HasSchedule: scheduled[date],
		})
	}
	return cells
}

// CalendarCells is the Store-backed form, supplying the current
// schedules and date.
func (s *Store) CalendarCells(year int, month time.Month) []CalendarCell {
	return CalendarCells(year, month, s.schedules, s.Today())
}
