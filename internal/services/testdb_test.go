package services

import (
	"fmt"
	"strings"
	"suiviprix/internal/db"
	"suiviprix/internal/models"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupTestDB binds the package-global DB to a fresh in-memory sqlite
// database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = gdb
}

func createTestUser(t *testing.T, name, accountType, city string, points int) *models.User {
	t.Helper()
	user := models.User{
		Name:        name,
		Email:       fmt.Sprintf("%s@test.com", strings.ToLower(strings.ReplaceAll(name, " ", "."))),
		Password:    "x",
		AccountType: accountType,
		City:        city,
		Country:     "Burundi",
		Points:      points,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", name, err)
	}
	return &user
}

func createTestMaterial(t *testing.T, name, unit string) *models.Material {
	t.Helper()
	material := models.Material{Name: name, Unit: unit}
	if err := db.DB.Create(&material).Error; err != nil {
		t.Fatalf("Failed to create material %s: %v", name, err)
	}
	return &material
}

func createTestSubmission(t *testing.T, userID, materialID uint, price float64, region string, purchaseDate time.Time) *models.PriceSubmission {
	t.Helper()
	submission := models.PriceSubmission{
		Ref:          fmt.Sprintf("ref-%d-%d", materialID, purchaseDate.UnixNano()),
		UserID:       userID,
		MaterialID:   materialID,
		Price:        decimal.NewFromFloat(price),
		Place:        "Quartier Industriel",
		PurchaseDate: purchaseDate,
		Status:       models.StatusValid,
	}
	if region != "" {
		submission.Region = &region
	}
	if err := db.DB.Create(&submission).Error; err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	return &submission
}
