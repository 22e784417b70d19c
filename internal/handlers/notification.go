package handlers

import (
	"net/http"
	"suiviprix/internal/services"
	"suiviprix/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// All returns the user's 50 most recent notifications.
func (h *NotificationHandler) All(c *gin.Context) {
	notifications, err := services.AllNotifications(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

// Unread returns up to 20 unread notifications.
func (h *NotificationHandler) Unread(c *gin.Context) {
	notifications, err := services.UnreadNotifications(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

// Read marks one notification as read. Marking someone else's notification
// is a silent no-op.
func (h *NotificationHandler) Read(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := services.MarkNotificationRead(id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReadAll marks every unread notification as read.
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	if err := services.MarkAllNotificationsRead(currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
