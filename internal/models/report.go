package models

import (
	"time"
)

// Report is a signalement against a submission. Moderation acts on these
// outside this service.
type Report struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index" json:"user_id"` // reporter
	User         User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	SubmissionID uint            `gorm:"not null;index" json:"submission_id"`
	Submission   PriceSubmission `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"submission"`
	Reason       string          `gorm:"size:200;not null" json:"reason"`
	CreatedAt    time.Time       `json:"created_at"`
}
