package models

import "time"

// Feedback is a free-form product feedback entry left by a user, optionally
// with a 1-5 rating.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	Rating    int       `json:"rating"` // 1-5, 0 when the user skipped the rating
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// BugReportStatus tracks the triage state of a bug report.
type BugReportStatus string

const (
	BugStatusOpen     BugReportStatus = "open"
	BugStatusResolved BugReportStatus = "resolved"
)

// BugReport is a user-submitted bug report tied to the page it occurred on.
type BugReport struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      string          `json:"user_id" gorm:"index"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PageURL     string          `json:"page_url"`
	Status      BugReportStatus `json:"status" gorm:"index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
