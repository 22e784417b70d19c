package models

import (
	"time"
)

const (
	VotePositive = "positif"
	VoteNegative = "negatif"
)

// Vote holds the one live vote a user has on a submission. A later vote with
// the other polarity updates this row in place, never adds a second one.
type Vote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_submission" json:"user_id"`
	SubmissionID uint      `gorm:"not null;uniqueIndex:idx_user_submission" json:"submission_id"`
	Polarity     string    `gorm:"size:10;not null" json:"polarity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
