package planner

import (
	"testing"
	"time"

	"StudyPlanner/internal/models"
)

func TestCalendarCells_AlwaysFortyTwo(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2025, time.February}, // 28 days
		{2024, time.February}, // leap year
		{2025, time.March},    // 31 days, starts Saturday
		{2025, time.June},     // starts on a Sunday
		{2025, time.December},
	}

	for _, m := range months {
		cells := CalendarCells(m.year, m.month, nil, "2025-03-15")
		if len(cells) != CalendarGridSize {
			t.Errorf("%v %d: %d cells, want %d", m.month, m.year, len(cells), CalendarGridSize)
		}

		first, err := ParseDay(cells[0].Date)
		if err != nil {
			t.Fatalf("first cell date %q unparseable: %v", cells[0].Date, err)
		}
		if first.Weekday() != time.Sunday {
			t.Errorf("%v %d: first cell is a %v, want Sunday", m.month, m.year, first.Weekday())
		}
	}
}

func TestCalendarCells_StartsSundayOnOrBeforeFirst(t *testing.T) {
	// March 1st 2025 is a Saturday, so the grid opens on Feb 23rd.
	cells := CalendarCells(2025, time.March, nil, "2025-03-15")
	if cells[0].Date != "2025-02-23" {
		t.Errorf("first cell = %s, want 2025-02-23", cells[0].Date)
	}
	if cells[0].InMonth {
		t.Error("February days must not be marked in-month")
	}

	// June 1st 2025 is itself a Sunday, so the grid opens on the 1st.
	cells = CalendarCells(2025, time.June, nil, "2025-03-15")
	if cells[0].Date != "2025-06-01" {
		t.Errorf("first cell = %s, want 2025-06-01", cells[0].Date)
	}
	if !cells[0].InMonth {
		t.Error("June 1st must be marked in-month")
	}
}

func TestCalendarCells_InMonthCountMatchesMonthLength(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.March, 31},
		{2025, time.April, 30},
	}

	for _, tc := range cases {
		cells := CalendarCells(tc.year, tc.month, nil, "2025-03-15")
		inMonth := 0
		for _, cell := range cells {
			if cell.InMonth {
				inMonth++
			}
		}
		if inMonth != tc.days {
			t.Errorf("%v %d: %d in-month cells, want %d", tc.month, tc.year, inMonth, tc.days)
		}
	}
}

func TestCalendarCells_TodayMarkedExactlyOnce(t *testing.T) {
	cells := CalendarCells(2025, time.March, nil, "2025-03-15")
	todayCount := 0
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			if cell.Date != "2025-03-15" {
				t.Errorf("wrong cell marked today: %s", cell.Date)
			}
		}
	}
	if todayCount != 1 {
		t.Errorf("today marked %d times, want exactly 1", todayCount)
	}

	// A month that does not include today has no today cell.
	cells = CalendarCells(2025, time.July, nil, "2025-03-15")
	for _, cell := range cells {
		if cell.IsToday {
			t.Errorf("today marked in a month that does not contain it: %s", cell.Date)
		}
	}
}

func TestCalendarCells_SchedulesMarked(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "1", Title: "a", Date: "2025-03-20", Time: "10:00", Duration: 60},
		{ID: "2", Title: "b", Date: "2025-03-20", Time: "16:00", Duration: 30},
		{ID: "3", Title: "c", Date: "2025-02-28", Time: "09:00", Duration: 45},
	}

	cells := CalendarCells(2025, time.March, schedules, "2025-03-15")
	marked := make(map[string]bool)
	for _, cell := range cells {
		if cell.HasSchedule {
			marked[cell.Date] = true
		}
	}

	// Feb 28 sits in March's leading edge cells, so it is marked too.
	want := map[string]bool{"2025-03-20": true, "2025-02-28": true}
	if len(marked) != len(want) {
		t.Errorf("marked days = %v, want %v", marked, want)
	}
	for day := range want {
		if !marked[day] {
			t.Errorf("day %s not marked", day)
		}
	}
}

func TestCalendarCells_StoreWrapperUsesCurrentState(t *testing.T) {
	store, _ := newTestStore()
	if _, err := store.AddSchedule(ScheduleFields{Title: "x", Date: "2025-03-20", Time: "10:00", Duration: 60}); err != nil {
		t.Fatalf("AddSchedule failed: %v", err)
	}

	cells := store.CalendarCells(2025, time.March)
	var found bool
	for _, cell := range cells {
		if cell.Date == "2025-03-20" && cell.HasSchedule {
			found = true
		}
		if cell.Date == "2025-03-15" && !cell.IsToday {
			t.Error("store wrapper must mark the store's today")
		}
	}
	if !found {
		t.Error("store wrapper must see the stored schedule")
	}
}
