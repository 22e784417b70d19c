package router

import (
	"suiviprix/internal/handlers"
	"suiviprix/internal/middleware"
	"suiviprix/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	priceHandler := handlers.NewPriceHandler()
	alertHandler := handlers.NewAlertHandler()
	moderationHandler := handlers.NewModerationHandler()
	notificationHandler := handlers.NewNotificationHandler()
	materialHandler := handlers.NewMaterialHandler()

	// Public routes
	r.GET("/", priceHandler.Home)                              // latest prices + averages
	r.GET("/prices/consult", priceHandler.Consult)             // price listing with filters
	r.GET("/prices/history/:material_id", priceHandler.History) // per-material history
	r.GET("/materials", materialHandler.List)                  // material catalogue
	r.GET("/moderation/comments/:submission_id", moderationHandler.Comments)

	// Authenticated routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/prices/submit", priceHandler.Submit)
		authorized.GET("/prices/my-submissions", priceHandler.MySubmissions)

		authorized.POST("/moderation/vote/:submission_id", moderationHandler.Vote)
		authorized.POST("/moderation/comment/:submission_id", moderationHandler.Comment)
		authorized.POST("/moderation/report/:submission_id", moderationHandler.Report)

		authorized.GET("/alerts", alertHandler.List)
		authorized.POST("/alerts/create", alertHandler.Create)
		authorized.POST("/alerts/toggle/:alert_id", alertHandler.Toggle)
		authorized.POST("/alerts/delete/:alert_id", alertHandler.Delete)

		authorized.GET("/notifications/all", notificationHandler.All)
		authorized.GET("/notifications/unread", notificationHandler.Unread)
		authorized.POST("/notifications/read/:id", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
	}

	// Commerçant-only routes
	merchant := r.Group("/materials")
	merchant.Use(middleware.AuthRequired(), middleware.RequireRole(models.AccountCommercant))
	{
		merchant.POST("/add", materialHandler.Add)
	}
}
