package planner

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"StudyPlanner/internal/models"
	"StudyPlanner/internal/storage"
)

// Persistence keys, one JSON array blob per collection.
const (
	keyTasks     = "studyTasks"
	keySchedules = "studySchedules"
	keyGoals     = "studyGoals"
	keySessions  = "studySessions"
)

// Store owns the four planner collections. Every mutation writes the
// affected collection (and only that one) back through the KV adapter.
// A failed runtime write is logged and the in-memory state kept, so the
// durable copy may lag until the next successful write. The Store is
// not safe for concurrent use; the app drives it from a single thread.
type Store struct {
	kv  storage.KV
	log *zap.SugaredLogger
	now func() time.Time

	tasks     []models.Task
	schedules []models.Schedule
	goals     []models.Goal
	sessions  []models.StudySession
}

func NewStore(kv storage.KV, log *zap.SugaredLogger) *Store {
	return &Store{
		kv:  kv,
		log: log,
		now: time.Now,
	}
}

// Today returns the current calendar date in canonical form.
func (s *Store) Today() string {
	return FormatDay(s.now())
}

// Load reads all four collections from the adapter. A key that was
// never written yields an empty collection; a blob that fails to parse
// is a fatal startup error, there is no repair path.
func (s *Store) Load() error {
	if err := loadCollection(s.kv, keyTasks, &s.tasks); err != nil {
		return err
	}
	if err := loadCollection(s.kv, keySchedules, &s.schedules); err != nil {
		return err
	}
	if err := loadCollection(s.kv, keyGoals, &s.goals); err != nil {
		return err
	}
	if err := loadCollection(s.kv, keySessions, &s.sessions); err != nil {
		return err
	}
	s.log.Infow("loaded collections",
		"tasks", len(s.tasks),
		"schedules", len(s.schedules),
		"goals", len(s.goals),
		"sessions", len(s.sessions))
	return nil
}

func loadCollection[T any](kv storage.KV, key string, into *[]T) error {
	blob, ok, err := kv.Get(key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		*into = nil
		return nil
	}
	if err := json.Unmarshal(blob, into); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (s *Store) Tasks() []models.Task            { return s.tasks }
func (s *Store) Schedules() []models.Schedule    { return s.schedules }
func (s *Store) Goals() []models.Goal            { return s.goals }
func (s *Store) Sessions() []models.StudySession { return s.sessions }

// TaskFields are the caller-supplied fields for a new task.
type TaskFields struct {
	Title       string
	Description string
	Subject     string
	DueDate     string
	Priority    models.Priority
}

func (s *Store) AddTask(f TaskFields) (models.Task, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return models.Task{}, ErrTitleRequired
	}
	if _, err := ParseDay(f.DueDate); err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidDate, f.DueDate)
	}
	if f.Priority == "" {
		f.Priority = models.PriorityMedium
	}
	if !f.Priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, f.Priority)
	}

	task := models.Task{
		ID:          newID(),
		Title:       title,
		Description: f.Description,
		Subject:     f.Subject,
		DueDate:     f.DueDate,
		Priority:    f.Priority,
		Completed:   false,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.persist(keyTasks, s.tasks)
	return task, nil
}

// UpdateTask patches the task with the given id. It returns false when
// no task has that id; nothing is changed or written in that case.
func (s *Store) UpdateTask(id string, p TaskPatch) (bool, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return false, ErrTitleRequired
	}
	if p.DueDate != nil {
		if _, err := ParseDay(*p.DueDate); err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidDate, *p.DueDate)
		}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidPriority, *p.Priority)
	}

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if p.Title != nil {
			t.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.Subject != nil {
			t.Subject = *p.Subject
		}
		if p.DueDate != nil {
			t.DueDate = *p.DueDate
		}
		if p.Priority != nil {
			t.Priority = *p.Priority
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		s.persist(keyTasks, s.tasks)
		return true, nil
	}
	return false, nil
}

func (s *Store) DeleteTask(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(keyTasks, s.tasks)
			return true
		}
	}
	return false
}

// ToggleTask flips the completed flag. Completion is only ever changed
// by this explicit action, never implied by the due date.
func (s *Store) ToggleTask(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist(keyTasks, s.tasks)
			return true
		}
	}
	return false
}

// ScheduleFields are the caller-supplied fields for a new schedule.
type ScheduleFields struct {
	Title    string
	Subject  string
	Date     string
	Time     string
	Duration int
}

func (s *Store) AddSchedule(f ScheduleFields) (models.Schedule, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return models.Schedule{}, ErrTitleRequired
	}
	if _, err := ParseDay(f.Date); err != nil {
		return models.Schedule{}, fmt.Errorf("%w: %q", ErrInvalidDate, f.Date)
	}
	if _, err := ParseClock(f.Time); err != nil {
		return models.Schedule{}, fmt.Errorf("%w: %q", ErrInvalidTime, f.Time)
	}
	if f.Duration <= 0 {
		return models.Schedule{}, ErrInvalidDuration
	}

	schedule := models.Schedule{
		ID:        newID(),
		Title:     title,
		Subject:   f.Subject,
		Date:      f.Date,
		Time:      f.Time,
		Duration:  f.Duration,
		CreatedAt: s.now(),
	}
	s.schedules = append(s.schedules, schedule)
	s.persist(keySchedules, s.schedules)
	return schedule, nil
}

func (s *Store) UpdateSchedule(id string, p SchedulePatch) (bool, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return false, ErrTitleRequired
	}
	if p.Date != nil {
		if _, err := ParseDay(*p.Date); err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidDate, *p.Date)
		}
	}
	if p.Time != nil {
		if _, err := ParseClock(*p.Time); err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidTime, *p.Time)
		}
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return false, ErrInvalidDuration
	}

	for i := range s.schedules {
		if s.schedules[i].ID != id {
			continue
		}
		sc := &s.schedules[i]
		if p.Title != nil {
			sc.Title = strings.TrimSpace(*p.Title)
		}
		if p.Subject != nil {
			sc.Subject = *p.Subject
		}
		if p.Date != nil {
			sc.Date = *p.Date
		}
		if p.Time != nil {
			sc.Time = *p.Time
		}
		if p.Duration != nil {
			sc.Duration = *p.Duration
		}
		s.persist(keySchedules, s.schedules)
		return true, nil
	}
	return false, nil
}

func (s *Store) DeleteSchedule(id string) bool {
	for i := range s.schedules {
		if s.schedules[i].ID == id {
			s.schedules = append(s.schedules[:i], s.schedules[i+1:]...)
			s.persist(keySchedules, s.schedules)
			return true
		}
	}
	return false
}

// GoalFields are the caller-supplied fields for a new goal.
type GoalFields struct {
	Title       string
	Description string
	Category    string
	TargetDate  string
	Progress    int
}

func (s *Store) AddGoal(f GoalFields) (models.Goal, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return models.Goal{}, ErrTitleRequired
	}
	if strings.TrimSpace(f.Category) == "" {
		return models.Goal{}, ErrCategoryRequired
	}
	if _, err := ParseDay(f.TargetDate); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %q", ErrInvalidDate, f.TargetDate)
	}

	goal := models.Goal{
		ID:          newID(),
		Title:       title,
		Description: f.Description,
		Category:    f.Category,
		TargetDate:  f.TargetDate,
		Progress:    clampProgress(f.Progress),
		CreatedAt:   s.now(),
	}
	s.goals = append(s.goals, goal)
	s.persist(keyGoals, s.goals)
	return goal, nil
}

func (s *Store) UpdateGoal(id string, p GoalPatch) (bool, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return false, ErrTitleRequired
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return false, ErrCategoryRequired
	}
	if p.TargetDate != nil {
		if _, err := ParseDay(*p.TargetDate); err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidDate, *p.TargetDate)
		}
	}

	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}
		g := &s.goals[i]
		if p.Title != nil {
			g.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			g.Description = *p.Description
		}
		if p.Category != nil {
			g.Category = *p.Category
		}
		if p.TargetDate != nil {
			g.TargetDate = *p.TargetDate
		}
		if p.Progress != nil {
			g.Progress = clampProgress(*p.Progress)
		}
		s.persist(keyGoals, s.goals)
		return true, nil
	}
	return false, nil
}

func (s *Store) DeleteGoal(id string) bool {
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.persist(keyGoals, s.goals)
			return true
		}
	}
	return false
}

// SetGoalProgress stores an absolute progress value, clamped to
// [0,100]. Callers wanting a relative bump pass progress+delta.
func (s *Store) SetGoalProgress(id string, progress int) bool {
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i].Progress = clampProgress(progress)
			s.persist(keyGoals, s.goals)
			return true
		}
	}
	return false
}

// AddStudySession logs studied time. The session date is fixed to the
// current calendar date at the moment of the call.
func (s *Store) AddStudySession(duration int, subject string) (models.StudySession, error) {
	if duration <= 0 {
		return models.StudySession{}, ErrInvalidDuration
	}

	session := models.StudySession{
		ID:        newID(),
		Date:      s.Today(),
		Duration:  duration,
		Subject:   subject,
		CreatedAt: s.now(),
	}
	s.sessions = append(s.sessions, session)
	s.persist(keySessions, s.sessions)
	return session, nil
}

func (s *Store) persist(key string, collection any) {
	blob, err := json.Marshal(collection)
	if err != nil {
		s.log.Warnw("failed to encode collection", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(key, blob); err != nil {
		s.log.Warnw("failed to persist collection, in-memory state kept", "key", key, "error", err)
	}
}

func newID() string {
	return uuid.New().String()
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
