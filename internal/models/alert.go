package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert kinds, also used as the notification category when a rule fires.
const (
	AlertRise      = "hausse"
	AlertFall      = "baisse"
	AlertAnyChange = "changement"
)

// AlertRule is a per-user watch on a material, optionally narrowed to a
// region. Duplicate rules are allowed; each one is evaluated on its own.
type AlertRule struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index" json:"user_id"`
	User       User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	MaterialID uint             `gorm:"not null;index" json:"material_id"`
	Material   Material         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"material"`
	Region     *string          `gorm:"size:100" json:"region"`
	Kind       string           `gorm:"size:20;not null" json:"kind"`
	Threshold  *decimal.Decimal `gorm:"type:numeric(12,2)" json:"threshold"` // watched price level, ignored for "changement"
	Active     bool             `gorm:"default:true;index" json:"active"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ValidAlertKind reports whether kind is one of the three rule kinds.
func ValidAlertKind(kind string) bool {
	return kind == AlertRise || kind == AlertFall || kind == AlertAnyChange
}
