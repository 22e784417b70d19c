package services

import (
	"fmt"
	"log"
	"os"
	"suiviprix/internal/db"
	"suiviprix/internal/models"
	"sync"
	"time"
)

// AlertService re-evaluates every active alert rule against the price
// ledger, on an hourly tick and on demand after each accepted submission.
// Both triggers run the same full pass; a pass only reads prices and appends
// notifications, so overlapping passes are safe. The same qualifying pair
// can therefore be notified twice before new data changes its
// classification; delivery is at-least-once on purpose.
type AlertService struct {
	trigger  chan struct{}
	interval time.Duration
}

var (
	alertService *AlertService
	alertOnce    sync.Once
)

// GetAlertService returns the singleton checker.
func GetAlertService() *AlertService {
	alertOnce.Do(func() {
		interval := time.Hour
		if v := os.Getenv("ALERT_CHECK_INTERVAL"); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				interval = d
			} else {
				log.Printf("Ignoring invalid ALERT_CHECK_INTERVAL %q", v)
			}
		}
		alertService = &AlertService{
			// Capacity 1: a burst of submissions between passes coalesces
			// into a single extra pass.
			trigger:  make(chan struct{}, 1),
			interval: interval,
		}
	})
	return alertService
}

// Start launches the background loop.
func (s *AlertService) Start() {
	go s.loop()
	log.Printf("Alert checker started, interval %s", s.interval)
}

func (s *AlertService) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CheckAlerts()
		case <-s.trigger:
			s.CheckAlerts()
		}
	}
}

// TriggerCheck requests an immediate pass. Non-blocking, callable from
// request handlers.
func (s *AlertService) TriggerCheck() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// CheckAlerts runs one full pass over all active rules. A rule that fails to
// evaluate is logged and skipped; the pass always finishes.
func (s *AlertService) CheckAlerts() {
	var rules []models.AlertRule
	if err := db.DB.Preload("Material").Where("active = ?", true).Find(&rules).Error; err != nil {
		log.Printf("Alert pass aborted, failed to load rules: %v", err)
		return
	}

	for _, rule := range rules {
		if err := s.checkRule(rule); err != nil {
			log.Printf("Alert rule %d skipped: %v", rule.ID, err)
		}
	}
}

func (s *AlertService) checkRule(rule models.AlertRule) error {
	if rule.Material.ID == 0 {
		return fmt.Errorf("material %d not found", rule.MaterialID)
	}

	points, err := RecentPricePoints(rule.MaterialID, rule.Region, 2)
	if err != nil {
		return err
	}

	trend, change := ClassifyTrend(points)
	if trend == TrendInsufficient || trend == TrendStable {
		return nil
	}
	if !RuleQualifies(rule, trend, change, points[0].Price) {
		return nil
	}

	link := fmt.Sprintf("/prices/history/%d", rule.MaterialID)
	Notify(rule.UserID, models.NotificationType(rule.Kind),
		AlertTitle(rule.Material.Name),
		AlertMessage(rule.Kind, rule.Material.Name, change),
		&link)
	return nil
}
