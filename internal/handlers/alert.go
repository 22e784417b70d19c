package handlers

import (
	"net/http"
	"suiviprix/internal/services"
	"suiviprix/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AlertHandler struct{}

func NewAlertHandler() *AlertHandler {
	return &AlertHandler{}
}

type createAlertRequest struct {
	MaterialID uint             `json:"material_id" binding:"required"`
	Kind       string           `json:"kind" binding:"required"`
	Region     *string          `json:"region"`
	Threshold  *decimal.Decimal `json:"threshold"`
}

// List returns the current user's alert rules.
func (h *AlertHandler) List(c *gin.Context) {
	rules, err := services.ListAlertRules(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alerts": rules})
}

// Create adds a watch rule for the current user.
func (h *AlertHandler) Create(c *gin.Context) {
	var req createAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidInput)
		return
	}

	rule, err := services.CreateAlertRule(currentUser(c), services.AlertRuleInput{
		MaterialID: req.MaterialID,
		Kind:       req.Kind,
		Region:     req.Region,
		Threshold:  req.Threshold,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "alert": rule})
}

// Toggle flips a rule's active flag, owner only.
func (h *AlertHandler) Toggle(c *gin.Context) {
	ruleID := utils.StringToUint(c.Param("alert_id"))
	if err := services.ToggleAlertRule(ruleID, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a rule, owner only.
func (h *AlertHandler) Delete(c *gin.Context) {
	ruleID := utils.StringToUint(c.Param("alert_id"))
	if err := services.DeleteAlertRule(ruleID, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
