package planner

import "time"

// All date comparisons in the planner operate on the canonical
// YYYY-MM-DD form: ISO date strings sort lexicographically in
// chronological order, so plain string comparison is correct.
const (
	DayFormat   = "2006-01-02"
	ClockFormat = "15:04"
)

// FormatDay renders t as a canonical date string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay validates a canonical date string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// ParseClock validates an HH:MM time-of-day string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockFormat, s)
}

// DisplayDay renders a canonical date string as e.g. "Sep 1, 2025".
// Unparseable input is returned as-is.
func DisplayDay(s string) string {
	t, err := ParseDay(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// DisplayClock renders an HH:MM string in 12-hour form, e.g. "2:30 PM".
// Unparseable input is returned as-is.
func DisplayClock(s string) string {
	t, err := ParseClock(s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}
