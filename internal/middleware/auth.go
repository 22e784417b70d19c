package middleware

import (
	"net/http"
	"suiviprix/internal/db"
	"suiviprix/internal/models"
	"suiviprix/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"
const UnreadCountKey = "unread_count"

// LoadUser resolves the session's user_id (written by the auth layer, which
// lives outside this service) and puts the user plus their unread
// notification count on the context.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(CheckUserKey, &user)

				if count, err := services.UnreadCount(user.ID); err == nil {
					c.Set(UnreadCountKey, count)
				}
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests without a resolved user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Vous devez être connecté pour accéder à cette page",
			})
			return
		}
		c.Next()
	}
}

// RequireRole rejects users whose account type is not listed.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get(CheckUserKey)
		if exists {
			accountType := user.(*models.User).AccountType
			for _, role := range roles {
				if role == accountType {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Vous n'avez pas les permissions nécessaires",
		})
	}
}
