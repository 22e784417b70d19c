package handlers

import (
	"net/http"
	"suiviprix/internal/services"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct{}

func NewMaterialHandler() *MaterialHandler {
	return &MaterialHandler{}
}

// List returns every material with its valid-submission count.
func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := services.ListMaterials()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "materials": materials})
}

// Add creates a material, commerçant accounts only.
func (h *MaterialHandler) Add(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Unit        string `json:"unit" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.ErrInvalidInput)
		return
	}

	material, err := services.CreateMaterial(currentUser(c), req.Name, req.Unit, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "material": material})
}
