package services

import (
	"errors"
	"suiviprix/internal/db"
	"suiviprix/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AlertRuleInput carries a new watch rule. Duplicates are allowed; each rule
// is evaluated independently.
type AlertRuleInput struct {
	MaterialID uint
	Kind       string
	Region     *string
	Threshold  *decimal.Decimal
}

// CreateAlertRule validates and stores a rule for the user.
func CreateAlertRule(user *models.User, in AlertRuleInput) (*models.AlertRule, error) {
	if !models.ValidAlertKind(in.Kind) {
		return nil, ErrInvalidAlertKind
	}
	if in.Threshold != nil && in.Threshold.IsNegative() {
		return nil, ErrInvalidInput
	}

	var material models.Material
	if err := db.DB.First(&material, in.MaterialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rule := models.AlertRule{
		UserID:     user.ID,
		MaterialID: in.MaterialID,
		Region:     in.Region,
		Kind:       in.Kind,
		Threshold:  in.Threshold,
		Active:     true,
	}
	if err := db.DB.Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// ListAlertRules returns the user's rules, newest first, materials loaded.
func ListAlertRules(userID uint) ([]models.AlertRule, error) {
	var rules []models.AlertRule
	err := db.DB.Preload("Material").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rules).Error
	return rules, err
}

// ToggleAlertRule flips a rule's active flag. Owner only; a foreign or
// missing rule is ErrNotFound.
func ToggleAlertRule(ruleID, userID uint) error {
	result := db.DB.Model(&models.AlertRule{}).
		Where("id = ? AND user_id = ?", ruleID, userID).
		UpdateColumn("active", gorm.Expr("NOT active"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAlertRule removes a rule. Owner only; deleting a rule that is not
// yours (or is gone) is a silent no-op.
func DeleteAlertRule(ruleID, userID uint) error {
	return db.DB.Where("id = ? AND user_id = ?", ruleID, userID).
		Delete(&models.AlertRule{}).Error
}
