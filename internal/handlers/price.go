package handlers

import (
	"net/http"
	"suiviprix/internal/services"
	"suiviprix/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PriceHandler struct{}

func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

type submitPriceRequest struct {
	MaterialID   uint            `json:"material_id" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	Place        string          `json:"place" binding:"required"`
	City         *string         `json:"city"`
	Region       *string         `json:"region"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	PurchaseDate string          `json:"purchase_date" binding:"required"` // YYYY-MM-DD
	Source       *string         `json:"source"`
}

// Submit stores a new observed price for the current user.
func (h *PriceHandler) Submit(c *gin.Context) {
	var req submitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidInput)
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		respondError(c, services.ErrInvalidInput)
		return
	}

	submission, err := services.SubmitPrice(currentUser(c), services.PriceInput{
		MaterialID:   req.MaterialID,
		Price:        req.Price,
		Place:        req.Place,
		City:         req.City,
		Region:       req.Region,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PurchaseDate: purchaseDate,
		Source:       req.Source,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "submission": submission})
}

// Consult lists non-rejected submissions with optional material/city/region
// filters.
func (h *PriceHandler) Consult(c *gin.Context) {
	filter := services.ConsultFilter{}
	if id := utils.StringToUint(c.Query("material_id")); id != 0 {
		filter.MaterialID = &id
	}
	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if region := c.Query("region"); region != "" {
		filter.Region = &region
	}

	submissions, err := services.ListSubmissions(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": submissions})
}

// History returns a material's full price history, oldest first.
func (h *PriceHandler) History(c *gin.Context) {
	materialID := utils.StringToUint(c.Param("material_id"))

	var city, region *string
	if v := c.Query("city"); v != "" {
		city = &v
	}
	if v := c.Query("region"); v != "" {
		region = &v
	}

	material, history, err := services.PriceHistory(materialID, city, region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "material": material, "history": history})
}

// MySubmissions lists the current user's submissions with tallies and
// comment counts.
func (h *PriceHandler) MySubmissions(c *gin.Context) {
	submissions, err := services.MySubmissions(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": submissions})
}

// Home returns the landing data: latest submissions and per-material
// averages.
func (h *PriceHandler) Home(c *gin.Context) {
	submissions, err := services.ListSubmissions(services.ConsultFilter{})
	if err != nil {
		respondError(c, err)
		return
	}
	if len(submissions) > 10 {
		submissions = submissions[:10]
	}

	averages, err := services.MaterialAverages()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"recent_submissions": submissions,
		"average_prices":     averages,
	})
}
