package planner

import (
	"math"
	"sort"

	"StudyPlanner/internal/models"
)

// TaskFilter selects which tasks FilterTasks returns.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterPending   TaskFilter = "pending"
	FilterCompleted TaskFilter = "completed"
	FilterOverdue   TaskFilter = "overdue"
)

// DashboardSummary bundles the aggregates the dashboard tab shows.
type DashboardSummary struct {
	TodayTasks   []models.Task
	Completion   int // percent of all tasks completed
	StudyHours   int
	StudyMinutes int
	Streak       int // consecutive study days
}

func (s *Store) DashboardSummary() DashboardSummary {
	hours, minutes := s.TodayStudyTime()
	return DashboardSummary{
		TodayTasks:   s.TodayTasks(),
		Completion:   s.CompletionPercentage(),
		StudyHours:   hours,
		StudyMinutes: minutes,
		Streak:       s.StudyStreak(),
	}
}

// TodayTasks returns the tasks due today, in insertion order.
func (s *Store) TodayTasks() []models.Task {
	today := s.Today()
	var result []models.Task
	for _, task := range s.tasks {
		if task.DueDate == today {
			result = append(result, task)
		}
	}
	return result
}

// CompletionPercentage is the rounded percentage of tasks completed,
// 0 when there are no tasks at all.
func (s *Store) CompletionPercentage() int {
	if len(s.tasks) == 0 {
		return 0
	}
	completed := 0
	for _, task := range s.tasks {
		if task.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(s.tasks))))
}

// TodayStudyTime sums today's logged session minutes and splits them
// into hours and minutes.
func (s *Store) TodayStudyTime() (hours, minutes int) {
	today := s.Today()
	total := 0
	for _, session := range s.sessions {
		if session.Date == today {
			total += session.Duration
		}
	}
	return total / 60, total % 60
}

// StudyStreak counts consecutive days with at least one logged session,
// scanning the 30 calendar days ending today, most recent first. A day
// without a session ends the scan, with one exception: no session
// logged yet today does not break a streak carried from yesterday.
func (s *Store) StudyStreak() int {
	studied := make(map[string]bool, len(s.sessions))
	for _, session := range s.sessions {
		studied[session.Date] = true
	}

	streak := 0
	now := s.now()
	for i := 0; i < 30; i++ {
		day := FormatDay(now.AddDate(0, 0, -i))
		if studied[day] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// FilterTasks returns the tasks matching filter, in insertion order.
// Overdue means not completed and due strictly before today.
func (s *Store) FilterTasks(filter TaskFilter) []models.Task {
	today := s.Today()
	var result []models.Task
	for _, task := range s.tasks {
		switch filter {
		case FilterPending:
			if task.Completed {
				continue
			}
		case FilterCompleted:
			if !task.Completed {
				continue
			}
		case FilterOverdue:
			if task.Completed || task.DueDate >= today {
				continue
			}
		}
		result = append(result, task)
	}
	return result
}

// Overdue reports whether the task is past due and still open, as of
// the store's current date.
func (s *Store) Overdue(task models.Task) bool {
	return !task.Completed && task.DueDate < s.Today()
}

// UpcomingSchedules returns schedules from today onward, soonest first.
func (s *Store) UpcomingSchedules() []models.Schedule {
	today := s.Today()
	var result []models.Schedule
	for _, schedule := range s.schedules {
		if schedule.Date >= today {
			result = append(result, schedule)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Time < result[j].Time
	})
	return result
}
