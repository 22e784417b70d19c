package services

import (
	"suiviprix/internal/db"
	"suiviprix/internal/models"

	"gorm.io/gorm"
)

// TrustedBadgeThreshold is the contribution-point total at which an eligible
// account earns the "fiable" badge.
const TrustedBadgeThreshold = 50

// Contribution amounts and their log labels.
const (
	PointsVote       = 1
	PointsSubmission = 1
)

const (
	ActionVoteCast       = "Vote sur une soumission"
	ActionPriceSubmitted = "Soumission de prix"
)

// AddContribution records a contribution log entry and moves the user's
// balance in the same transaction. The balance update is a single
// `points = points + ?` so concurrent accruals cannot lose each other.
func AddContribution(tx *gorm.DB, userID uint, amount int, action string) error {
	entry := models.ContributionLog{
		UserID: userID,
		Amount: amount,
		Action: action,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", amount)).
		Error
}

// AwardContribution is AddContribution in its own transaction, for callers
// that have nothing else to bundle with it.
func AwardContribution(userID uint, amount int, action string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return AddContribution(tx, userID, amount, action)
	})
}

// RefreshTrustedBadge sets the badge if the user has crossed the threshold.
// The WHERE clause carries the whole check-then-set, so two concurrent calls
// both land on the same final state and the badge can never flip back.
func RefreshTrustedBadge(userID uint, accountType string) error {
	if !BadgeEligible(accountType) {
		return nil
	}
	return db.DB.Model(&models.User{}).
		Where("id = ? AND points >= ? AND trusted = ?", userID, TrustedBadgeThreshold, false).
		UpdateColumn("trusted", true).
		Error
}

// GetPoints returns the user's contribution balance.
func GetPoints(userID uint) (int, error) {
	var user models.User
	if err := db.DB.Select("points").First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}

// IsTrusted reports whether the user holds the badge.
func IsTrusted(userID uint) (bool, error) {
	var user models.User
	if err := db.DB.Select("trusted").First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.Trusted, nil
}
