package models

import (
	"time"
)

type Comment struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	User         User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	SubmissionID uint            `gorm:"not null;index" json:"submission_id"`
	Submission   PriceSubmission `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"submission"`
	Content      string          `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time       `json:"created_at"`
}
