package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"suiviprix/internal/db"
	"suiviprix/internal/models"
	"suiviprix/internal/utils"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceInput carries a new observed price.
type PriceInput struct {
	MaterialID   uint
	Price        decimal.Decimal
	Place        string
	City         *string
	Region       *string
	Latitude     *float64
	Longitude    *float64
	PurchaseDate time.Time
	Source       *string
}

// ConsultFilter narrows the public price listing.
type ConsultFilter struct {
	MaterialID *uint
	City       *string
	Region     *string
}

// MaterialAverage is one row of the home-page price table.
type MaterialAverage struct {
	Material     string          `json:"material"`
	Unit         string          `json:"unit"`
	AveragePrice decimal.Decimal `json:"average_price"`
	Submissions  int             `json:"submissions"`
}

// SubmitPrice validates and stores a new submission, accrues a contribution
// point, kicks the alert checker and fans a best-effort notification out to
// other users of the same city.
func SubmitPrice(user *models.User, in PriceInput) (*models.PriceSubmission, error) {
	if !Can(user.AccountType, ActionSubmitPrice) {
		return nil, ErrUnauthorized
	}
	if in.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if strings.TrimSpace(in.Place) == "" || in.PurchaseDate.IsZero() {
		return nil, ErrInvalidInput
	}

	var material models.Material
	if err := db.DB.First(&material, in.MaterialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	submission := models.PriceSubmission{
		Ref:          uuid.NewString(),
		UserID:       user.ID,
		MaterialID:   in.MaterialID,
		Price:        in.Price,
		Place:        strings.TrimSpace(in.Place),
		City:         in.City,
		Region:       in.Region,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		PurchaseDate: in.PurchaseDate,
		Source:       in.Source,
		Status:       models.StatusValid,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		return AddContribution(tx, user.ID, PointsSubmission, ActionPriceSubmitted)
	})
	if err != nil {
		return nil, err
	}

	GetAlertService().TriggerCheck()
	notifySameCity(user, material.Name, in.City)

	return &submission, nil
}

// notifySameCity tells other users of the city a fresh price landed.
func notifySameCity(author *models.User, materialName string, city *string) {
	if city == nil || *city == "" {
		return
	}

	var neighbours []models.User
	if err := db.DB.Select("id").Where("city = ? AND id <> ?", *city, author.ID).Find(&neighbours).Error; err != nil {
		log.Printf("Failed to load users in %s for fan-out: %v", *city, err)
		return
	}

	link := "/prices/consult"
	for _, neighbour := range neighbours {
		Notify(neighbour.ID, models.NotificationTypeTransaction,
			"Nouveau prix dans votre zone",
			fmt.Sprintf("Un nouveau prix pour %s a été soumis à %s.", materialName, *city),
			&link)
	}
}

// RecentPricePoints returns the most recent valid price points for a
// material, optionally narrowed to a region, newest first. This is the
// ledger read the trend evaluator works from.
func RecentPricePoints(materialID uint, region *string, limit int) ([]PricePoint, error) {
	query := db.DB.
		Where("material_id = ? AND status = ?", materialID, models.StatusValid).
		Order("purchase_date DESC").
		Limit(limit)
	if region != nil && *region != "" {
		query = query.Where("region = ?", *region)
	}

	var submissions []models.PriceSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}

	points := make([]PricePoint, 0, len(submissions))
	for _, s := range submissions {
		points = append(points, PricePoint{Price: s.Price, Date: s.PurchaseDate})
	}
	return points, nil
}

// ListSubmissions returns the public price listing: non-rejected
// submissions, filtered, newest purchases first, capped at 100.
func ListSubmissions(filter ConsultFilter) ([]models.PriceSubmission, error) {
	query := db.DB.Preload("Material").Preload("User").
		Where("status <> ?", models.StatusRejected)
	if filter.MaterialID != nil {
		query = query.Where("material_id = ?", *filter.MaterialID)
	}
	if filter.City != nil && *filter.City != "" {
		query = query.Where("city = ?", *filter.City)
	}
	if filter.Region != nil && *filter.Region != "" {
		query = query.Where("region = ?", *filter.Region)
	}

	var submissions []models.PriceSubmission
	err := query.Order("purchase_date DESC, created_at DESC").Limit(100).Find(&submissions).Error
	return submissions, err
}

// PriceHistory returns every non-rejected point for a material in purchase
// order, oldest first, plus the material itself.
func PriceHistory(materialID uint, city, region *string) (*models.Material, []models.PriceSubmission, error) {
	var material models.Material
	if err := db.DB.First(&material, materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	query := db.DB.Where("material_id = ? AND status <> ?", materialID, models.StatusRejected)
	if city != nil && *city != "" {
		query = query.Where("city = ?", *city)
	}
	if region != nil && *region != "" {
		query = query.Where("region = ?", *region)
	}

	var history []models.PriceSubmission
	if err := query.Order("purchase_date ASC").Find(&history).Error; err != nil {
		return nil, nil, err
	}
	return &material, history, nil
}

// MySubmissions returns the user's own submissions with comment counts,
// newest first. The vote tallies ride along on the rows themselves.
func MySubmissions(userID uint) ([]models.PriceSubmission, error) {
	var submissions []models.PriceSubmission
	err := db.DB.Preload("Material").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	for i := range submissions {
		var count int64
		db.DB.Model(&models.Comment{}).Where("submission_id = ?", submissions[i].ID).Count(&count)
		submissions[i].CommentCount = int(count)
	}
	return submissions, nil
}

// MaterialAverages computes the average of the last 30 valid prices per
// material, skipping materials with no data.
func MaterialAverages() ([]MaterialAverage, error) {
	var materials []models.Material
	if err := db.DB.Order("name").Find(&materials).Error; err != nil {
		return nil, err
	}

	averages := make([]MaterialAverage, 0, len(materials))
	for _, material := range materials {
		var submissions []models.PriceSubmission
		err := db.DB.
			Where("material_id = ? AND status = ?", material.ID, models.StatusValid).
			Order("purchase_date DESC").
			Limit(30).
			Find(&submissions).Error
		if err != nil {
			return nil, err
		}
		if len(submissions) == 0 {
			continue
		}

		prices := make([]decimal.Decimal, 0, len(submissions))
		for _, s := range submissions {
			prices = append(prices, s.Price)
		}
		averages = append(averages, MaterialAverage{
			Material:     material.Name,
			Unit:         material.Unit,
			AveragePrice: utils.AveragePrice(prices),
			Submissions:  len(submissions),
		})
	}
	return averages, nil
}
