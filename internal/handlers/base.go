package handlers

import (
	"errors"
	"log"
	"net/http"
	"suiviprix/internal/middleware"
	"suiviprix/internal/models"
	"suiviprix/internal/services"

	"github.com/gin-gonic/gin"
)

// currentUser returns the user LoadUser put on the context. Only call behind
// AuthRequired.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// respondError maps the service error taxonomy onto HTTP statuses with the
// {success:false, message} envelope every endpoint uses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidVote),
		errors.Is(err, services.ErrInvalidAlertKind),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "Erreur serveur"
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}
