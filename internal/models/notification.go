package models

import (
	"time"
)

type NotificationType string

// Alert notifications reuse the rule kind (hausse/baisse/changement) as
// their category, same values as the Alert* constants.
const (
	NotificationTypeVote        NotificationType = "vote"
	NotificationTypeComment     NotificationType = "commentaire"
	NotificationTypeTransaction NotificationType = "transaction"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // recipient
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Title     string           `gorm:"size:150;not null" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	Link      *string          `gorm:"size:200" json:"link"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
