package services

import (
	"fmt"
	"suiviprix/internal/models"
	"time"

	"github.com/shopspring/decimal"
)

// Trend classification of the two most recent price points of a
// (material, region) pair.
type Trend string

const (
	TrendRise         Trend = models.AlertRise
	TrendFall         Trend = models.AlertFall
	TrendStable       Trend = "stable"
	TrendInsufficient Trend = "insuffisant"
)

// SignificantChangePct is the band an "any change" rule must clear, in
// percent of the previous price.
var SignificantChangePct = decimal.NewFromInt(5)

// PricePoint is one valid ledger entry, price plus purchase date.
type PricePoint struct {
	Price decimal.Decimal
	Date  time.Time
}

// ClassifyTrend compares the two most recent price points (newest first) and
// returns the trend with the signed percent change rounded to two decimals.
// Fewer than two points, or a previous price of zero, classify as
// insufficient: there is nothing meaningful to divide by.
func ClassifyTrend(points []PricePoint) (Trend, decimal.Decimal) {
	if len(points) < 2 {
		return TrendInsufficient, decimal.Zero
	}
	current, previous := points[0].Price, points[1].Price
	if !previous.IsPositive() {
		return TrendInsufficient, decimal.Zero
	}

	change := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	switch {
	case change.IsPositive():
		return TrendRise, change
	case change.IsNegative():
		return TrendFall, change
	default:
		return TrendStable, change
	}
}

// RuleQualifies decides whether a classified trend fires the given rule.
// Stable and insufficient trends never fire anything. The threshold is a
// watched price level: a rise that has not yet reached it, or a fall still
// above it, is suppressed. "changement" rules ignore the threshold.
func RuleQualifies(rule models.AlertRule, trend Trend, change, current decimal.Decimal) bool {
	switch rule.Kind {
	case models.AlertRise:
		if trend != TrendRise {
			return false
		}
		if rule.Threshold != nil && current.LessThan(*rule.Threshold) {
			return false
		}
	case models.AlertFall:
		if trend != TrendFall {
			return false
		}
		if rule.Threshold != nil && current.GreaterThan(*rule.Threshold) {
			return false
		}
	case models.AlertAnyChange:
		if trend != TrendRise && trend != TrendFall {
			return false
		}
		if !change.Abs().GreaterThan(SignificantChangePct) {
			return false
		}
	default:
		return false
	}
	return true
}

// AlertTitle builds the notification title for a fired rule.
func AlertTitle(materialName string) string {
	return fmt.Sprintf("Alerte prix - %s", materialName)
}

// AlertMessage builds the notification body for a fired rule.
func AlertMessage(kind, materialName string, change decimal.Decimal) string {
	switch kind {
	case models.AlertRise:
		return fmt.Sprintf("Hausse de prix détectée pour %s: %s%%", materialName, change.StringFixed(2))
	case models.AlertFall:
		return fmt.Sprintf("Baisse de prix détectée pour %s: %s%%", materialName, change.Abs().StringFixed(2))
	default:
		sign := ""
		if change.IsPositive() {
			sign = "+"
		}
		return fmt.Sprintf("Changement significatif de prix pour %s: %s%s%%", materialName, sign, change.StringFixed(2))
	}
}
