package services

import (
	"log"
	"suiviprix/internal/db"
	"suiviprix/internal/models"
)

// Notification delivery is best-effort: it must never fail the vote, comment
// or submission that triggered it, so every failure here is logged and
// swallowed.

// Notify creates a notification for the recipient. A missing recipient or a
// store failure is logged, nothing more.
func Notify(userID uint, category models.NotificationType, title, message string, link *string) {
	var recipient models.User
	if err := db.DB.Select("id").First(&recipient, userID).Error; err != nil {
		log.Printf("Notification dropped, recipient %d not found: %v", userID, err)
		return
	}

	notification := models.Notification{
		UserID:  userID,
		Type:    category,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
	}
}

// UnreadNotifications returns up to 20 unread items, newest first.
func UnreadNotifications(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.DB.
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Limit(20).
		Find(&notifications).Error
	return notifications, err
}

// AllNotifications returns up to 50 items, read or not, newest first.
func AllNotifications(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error
	return notifications, err
}

// UnreadCount returns the number of unread items for the user.
func UnreadCount(userID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkNotificationRead flips one item to read, only if it belongs to the
// user. A wrong owner or an already-read item is a silent no-op so callers
// cannot probe other users' inboxes.
func MarkNotificationRead(id, userID uint) error {
	return db.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		UpdateColumn("is_read", true).Error
}

// MarkAllNotificationsRead flips every unread item for the user. Idempotent.
func MarkAllNotificationsRead(userID uint) error {
	return db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		UpdateColumn("is_read", true).Error
}
