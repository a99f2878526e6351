package models

import "time"

// Schedule is a planned study session on the calendar. Multiple schedules
// may share the same date and time.
type Schedule struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject,omitempty"`
	Date      string    `json:"date"`     // YYYY-MM-DD
	Time      string    `json:"time"`     // HH:MM
	Duration  int       `json:"duration"` // minutes
	CreatedAt time.Time `json:"createdAt"`
}
