package services

import (
	"errors"
	"fmt"
	"log"
	"suiviprix/internal/db"
	"suiviprix/internal/models"

	"gorm.io/gorm"
)

// CastVote resolves one user's vote on a submission. At most one vote row
// exists per (user, submission): the first call inserts it, a later call
// with the other polarity flips it in place, a repeat with the same polarity
// changes nothing (no counters, no points, no notification).
//
// The row lookup, the counter moves and the contribution accrual share one
// transaction so two near-simultaneous votes cannot lose a counter update.
func CastVote(voter *models.User, submissionID uint, polarity string) (*models.PriceSubmission, error) {
	if polarity != models.VotePositive && polarity != models.VoteNegative {
		return nil, ErrInvalidVote
	}
	if !Can(voter.AccountType, ActionVote) {
		return nil, ErrUnauthorized
	}

	var submission models.PriceSubmission
	sameVote := false

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Material").First(&submission, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND submission_id = ?", voter.ID, submissionID).First(&existing).Error
		switch {
		case err == nil:
			if existing.Polarity == polarity {
				sameVote = true
				return nil
			}
			if err := tx.Model(&existing).Update("polarity", polarity).Error; err != nil {
				return err
			}
			if err := shiftVoteCounters(tx, submissionID, polarity); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{
				UserID:       voter.ID,
				SubmissionID: submissionID,
				Polarity:     polarity,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			column := voteCounterColumn(polarity)
			if err := tx.Model(&models.PriceSubmission{}).
				Where("id = ?", submissionID).
				UpdateColumn(column, gorm.Expr(column+" + ?", 1)).
				Error; err != nil {
				return err
			}
		default:
			return err
		}

		return AddContribution(tx, voter.ID, PointsVote, ActionVoteCast)
	})
	if err != nil {
		return nil, err
	}

	if !sameVote {
		if err := RefreshTrustedBadge(voter.ID, voter.AccountType); err != nil {
			log.Printf("Failed to refresh trusted badge for user %d: %v", voter.ID, err)
		}

		if submission.UserID != voter.ID {
			link := "/prices/my-submissions"
			Notify(submission.UserID, models.NotificationTypeVote, "Nouveau vote",
				fmt.Sprintf("%s a voté %s sur votre prix de %s", voter.Name, polarity, submission.Material.Name),
				&link)
		}
	}

	// Reload so callers see the fresh tallies
	if err := db.DB.First(&submission, submissionID).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// shiftVoteCounters moves one unit from the old polarity's counter to the
// new one, both sides in a single UPDATE.
func shiftVoteCounters(tx *gorm.DB, submissionID uint, newPolarity string) error {
	updates := map[string]interface{}{
		"votes_positive": gorm.Expr("votes_positive - ?", 1),
		"votes_negative": gorm.Expr("votes_negative + ?", 1),
	}
	if newPolarity == models.VotePositive {
		updates = map[string]interface{}{
			"votes_positive": gorm.Expr("votes_positive + ?", 1),
			"votes_negative": gorm.Expr("votes_negative - ?", 1),
		}
	}
	return tx.Model(&models.PriceSubmission{}).
		Where("id = ?", submissionID).
		UpdateColumns(updates).
		Error
}

func voteCounterColumn(polarity string) string {
	if polarity == models.VotePositive {
		return "votes_positive"
	}
	return "votes_negative"
}
