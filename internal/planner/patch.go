package planner

import "StudyPlanner/internal/models"

// Patch structs carry the fields an edit may change. Nil fields are
// left untouched; ID and CreatedAt are never patchable.

type TaskPatch struct {
	Title       *string
	Description *string
	Subject     *string
	DueDate     *string
	Priority    *models.Priority
	Completed   *bool
}

type SchedulePatch struct {
	Title    *string
	Subject  *string
	Date     *string
	Time     *string
	Duration *int
}

type GoalPatch struct {
	Title       *string
	Description *string
	Category    *string
	TargetDate  *string
	Progress    *int
}
