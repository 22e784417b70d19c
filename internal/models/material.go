package models

import (
	"time"
)

type Material struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Unit        string    `gorm:"size:50;not null" json:"unit"` // e.g. "sac 50kg", "barre 12m"
	Description string    `gorm:"size:200" json:"description"`
	AddedByID   *uint     `gorm:"index" json:"added_by_id"`
	AddedBy     *User     `gorm:"foreignKey:AddedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"added_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Filled by queries, not stored
	SubmissionCount int `gorm:"-" json:"submission_count"`
}
