package services

import (
	"errors"
	"fmt"
	"strings"
	"suiviprix/internal/db"
	"suiviprix/internal/models"

	"gorm.io/gorm"
)

// AddComment stores an artisan's comment on a submission and notifies the
// author. Comments earn no contribution points.
func AddComment(user *models.User, submissionID uint, content string) (*models.Comment, error) {
	if !Can(user.AccountType, ActionComment) {
		return nil, ErrUnauthorized
	}
	content = strings.TrimSpace(content)
	if len(content) < 5 {
		return nil, ErrInvalidInput
	}

	var submission models.PriceSubmission
	if err := db.DB.Preload("Material").First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		UserID:       user.ID,
		SubmissionID: submissionID,
		Content:      content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}

	if submission.UserID != user.ID {
		link := "/prices/my-submissions"
		Notify(submission.UserID, models.NotificationTypeComment, "Nouveau commentaire",
			fmt.Sprintf("%s a commenté votre prix de %s", user.Name, submission.Material.Name),
			&link)
	}
	return &comment, nil
}

// ListComments returns a submission's comments, newest first.
func ListComments(submissionID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").
		Where("submission_id = ?", submissionID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// ReportSubmission files a signalement. Any authenticated account may
// report; moderation handles the rest outside this service.
func ReportSubmission(user *models.User, submissionID uint, reason string) error {
	reason = strings.TrimSpace(reason)
	if len(reason) < 3 {
		return ErrInvalidInput
	}

	var submission models.PriceSubmission
	if err := db.DB.First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	report := models.Report{
		UserID:       user.ID,
		SubmissionID: submissionID,
		Reason:       reason,
	}
	return db.DB.Create(&report).Error
}
