package models

import "time"

// StudySession records time actually spent studying. Sessions are
// append-only: there is no edit or delete.
type StudySession struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`     // YYYY-MM-DD, fixed at creation
	Duration  int       `json:"duration"` // minutes
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplaySubject returns the subject, or "General" when none was set.
func (s StudySession) DisplaySubject() string {
	if s.Subject == "" {
		return "General"
	}
	return s.Subject
}
