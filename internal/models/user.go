package models

import (
	"time"
)

// Account types. Which type may do what lives in services/policy.go.
const (
	AccountParticulier = "particulier"
	AccountArtisan     = "artisan"
	AccountCommercant  = "commercant"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // Hash, written by the auth layer
	AccountType string    `gorm:"size:20;default:'particulier';not null" json:"account_type"`
	City        string    `gorm:"size:100;index" json:"city"`
	Country     string    `gorm:"size:100" json:"country"`
	Points      int       `gorm:"default:0" json:"points"`      // contribution points, never decremented
	Trusted     bool      `gorm:"default:false" json:"trusted"` // badge "fiable", one-way latch
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
