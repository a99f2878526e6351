package models

import "time"

// Goal is a longer-term objective with a target date and a progress
// percentage. Progress is always kept within [0,100].
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	TargetDate  string    `json:"targetDate"` // YYYY-MM-DD
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
}
