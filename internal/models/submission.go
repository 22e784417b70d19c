package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Submission statuses. New submissions go live as "valide"; moderation may
// flip them to "rejete", which removes them from every read path here.
const (
	StatusPending  = "en_attente"
	StatusValid    = "valide"
	StatusRejected = "rejete"
)

type PriceSubmission struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Ref          string          `gorm:"uniqueIndex;size:36;not null" json:"ref"`
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	User         User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	MaterialID   uint            `gorm:"not null;index" json:"material_id"`
	Material     Material        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"material"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Place        string          `gorm:"size:150;not null" json:"place"` // point of sale
	City         *string         `gorm:"size:100;index" json:"city"`
	Region       *string         `gorm:"size:100;index" json:"region"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	PurchaseDate time.Time       `gorm:"not null;index" json:"purchase_date"`
	Source       *string         `gorm:"size:150" json:"source"`
	Status       string          `gorm:"size:20;default:'valide';index" json:"status"`

	// Tally fields, moved only by the vote ledger
	VotesPositive int `gorm:"default:0" json:"votes_positive"`
	VotesNegative int `gorm:"default:0" json:"votes_negative"`

	CreatedAt time.Time `json:"created_at"`

	// Filled by queries, not stored
	CommentCount int `gorm:"-" json:"comment_count"`
}
