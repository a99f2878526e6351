package planner

import "errors"

// Validation failures abort the mutation before anything is appended or
// persisted. A missing id on update/delete is not an error; those
// operations report not-found through their bool return instead.
var (
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidTime      = errors.New("time must be in HH:MM form")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
	ErrCategoryRequired = errors.New("category is required")
)
