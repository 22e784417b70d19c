package db

import (
	"log"
	"os"
	"suiviprix/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=suiviprix port=5432 sslmode=disable TimeZone=Africa/Bujumbura"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedMaterials()
}

// Migrate runs the gorm auto-migration for every persisted entity.
// Split out so tests can run it against their own database.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Material{},
		&models.PriceSubmission{},
		&models.AlertRule{},
		&models.Vote{},
		&models.Notification{},
		&models.Comment{},
		&models.Report{},
		&models.ContributionLog{},
	)
}

func seedMaterials() {
	var count int64
	DB.Model(&models.Material{}).Count(&count)
	if count > 0 {
		log.Println("Materials already seeded, skipping")
		return
	}

	materials := []models.Material{
		{Name: "Ciment", Unit: "sac 50kg", Description: "Ciment Portland ordinaire"},
		{Name: "Fer à béton", Unit: "barre 12m", Description: "Barre d'armature diamètre 12mm"},
		{Name: "Brique", Unit: "pièce", Description: "Brique cuite artisanale"},
		{Name: "Tôle", Unit: "feuille", Description: "Tôle galvanisée BG 28"},
		{Name: "Sable", Unit: "m³", Description: "Sable de rivière"},
		{Name: "Gravier", Unit: "m³", Description: "Gravier concassé 15/25"},
	}

	for _, material := range materials {
		if err := DB.Create(&material).Error; err != nil {
			log.Printf("Failed to create material %s: %v", material.Name, err)
		}
	}
	log.Println("Initial materials created successfully")
}
