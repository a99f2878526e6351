package planner

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	parsed, err := ParseDay("2025-03-15")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Errorf("parsed %v, want 2025-03-15", parsed)
	}

	for _, bad := range []string{"", "15-03-2025", "2025/03/15", "2025-3-5", "tomorrow"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) should fail", bad)
		}
	}
}

func TestFormatDayRoundTrip(t *testing.T) {
	day := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.UTC)
	if got := FormatDay(day); got != "2025-03-05" {
		t.Errorf("FormatDay = %q, want 2025-03-05", got)
	}
}

func TestCanonicalDatesSortLexicographically(t *testing.T) {
	// The planner compares dates as strings; the canonical form has to
	// order the same way the calendar does, including across zero
	// padding boundaries.
	pairs := [][2]string{
		{"2025-03-09", "2025-03-10"},
		{"2025-09-30", "2025-10-01"},
		{"2024-12-31", "2025-01-01"},
	}
	for _, pair := range pairs {
		if !(pair[0] < pair[1]) {
			t.Errorf("%q should sort before %q", pair[0], pair[1])
		}
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("09:30"); err != nil {
		t.Errorf("ParseClock(09:30) failed: %v", err)
	}
	for _, bad := range []string{"", "9:3", "25:00", "noon"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) should fail", bad)
		}
	}
}

func TestDisplayFormats(t *testing.T) {
	if got := DisplayDay("2025-03-05"); got != "Mar 5, 2025" {
		t.Errorf("DisplayDay = %q, want Mar 5, 2025", got)
	}
	if got := DisplayClock("14:30"); got != "2:30 PM" {
		t.Errorf("DisplayClock = %q, want 2:30 PM", got)
	}
	if got := DisplayClock("09:05"); got != "9:05 AM" {
		t.Errorf("DisplayClock = %q, want 9:05 AM", got)
	}

	// Unparseable input passes through untouched.
	if got := DisplayDay("garbage"); got != "garbage" {
		t.Errorf("DisplayDay fallback = %q", got)
	}
	if got := DisplayClock("garbage"); got != "garbage" {
		t.Errorf("DisplayClock fallback = %q", got)
	}
}
