package services

import (
	"strings"
	"suiviprix/internal/db"
	"suiviprix/internal/models"
)

// CreateMaterial adds a new tracked material. Commerçant accounts only;
// names must be unique.
func CreateMaterial(user *models.User, name, unit, description string) (*models.Material, error) {
	if !Can(user.AccountType, ActionAddMaterial) {
		return nil, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if len(name) < 2 || unit == "" {
		return nil, ErrInvalidInput
	}

	var count int64
	if err := db.DB.Model(&models.Material{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	material := models.Material{
		Name:        name,
		Unit:        unit,
		Description: strings.TrimSpace(description),
		AddedByID:   &user.ID,
	}
	if err := db.DB.Create(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

// ListMaterials returns every material with its count of valid submissions.
func ListMaterials() ([]models.Material, error) {
	var materials []models.Material
	if err := db.DB.Order("name").Find(&materials).Error; err != nil {
		return nil, err
	}

	for i := range materials {
		var count int64
		db.DB.Model(&models.PriceSubmission{}).
			Where("material_id = ? AND status = ?", materials[i].ID, models.StatusValid).
			Count(&count)
		materials[i].SubmissionCount = int(count)
	}
	return materials, nil
}
