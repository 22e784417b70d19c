package services

import (
	"suiviprix/internal/models"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func pricePoints(prices ...float64) []PricePoint {
	points := make([]PricePoint, 0, len(prices))
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		points = append(points, PricePoint{
			Price: decimal.NewFromFloat(p),
			Date:  date.AddDate(0, 0, -i),
		})
	}
	return points
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name       string
		points     []PricePoint
		wantTrend  Trend
		wantChange string
	}{
		{"rise", pricePoints(41000, 38000), TrendRise, "7.89"},
		{"fall", pricePoints(39500, 40000), TrendFall, "-1.25"},
		{"stable", pricePoints(40000, 40000), TrendStable, "0.00"},
		{"zero previous price", pricePoints(40000, 0), TrendInsufficient, "0.00"},
		{"single point", pricePoints(40000), TrendInsufficient, "0.00"},
		{"no points", nil, TrendInsufficient, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, change := ClassifyTrend(tt.points)
			if trend != tt.wantTrend {
				t.Errorf("trend = %s, want %s", trend, tt.wantTrend)
			}
			if got := change.StringFixed(2); got != tt.wantChange {
				t.Errorf("change = %s, want %s", got, tt.wantChange)
			}
		})
	}
}

func TestClassifyTrendSignMatchesDifference(t *testing.T) {
	pairs := [][2]float64{
		{41000, 38000}, {38000, 41000}, {100.01, 100}, {99.99, 100},
		{250, 250}, {1, 38000}, {38000, 1},
	}
	for _, pair := range pairs {
		current, previous := pair[0], pair[1]
		trend, _ := ClassifyTrend(pricePoints(current, previous))
		switch {
		case current > previous && trend != TrendRise:
			t.Errorf("%v > %v classified as %s", current, previous, trend)
		case current < previous && trend != TrendFall:
			t.Errorf("%v < %v classified as %s", current, previous, trend)
		case current == previous && trend != TrendStable:
			t.Errorf("%v == %v classified as %s", current, previous, trend)
		}
	}
}

func threshold(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestRuleQualifies(t *testing.T) {
	riseTrend, riseChange := ClassifyTrend(pricePoints(41000, 38000)) // +7.89%
	fallTrend, fallChange := ClassifyTrend(pricePoints(39500, 40000)) // -1.25%

	tests := []struct {
		name    string
		rule    models.AlertRule
		trend   Trend
		change  decimal.Decimal
		current decimal.Decimal
		want    bool
	}{
		{"rise rule fires on rise", models.AlertRule{Kind: models.AlertRise}, riseTrend, riseChange, decimal.NewFromInt(41000), true},
		{"fall rule ignores rise", models.AlertRule{Kind: models.AlertFall}, riseTrend, riseChange, decimal.NewFromInt(41000), false},
		{"any-change fires above 5 percent", models.AlertRule{Kind: models.AlertAnyChange}, riseTrend, riseChange, decimal.NewFromInt(41000), true},
		{"any-change ignores small move", models.AlertRule{Kind: models.AlertAnyChange}, fallTrend, fallChange, decimal.NewFromInt(39500), false},
		{"fall rule fires on fall", models.AlertRule{Kind: models.AlertFall}, fallTrend, fallChange, decimal.NewFromInt(39500), true},
		{"fall suppressed above watched level", models.AlertRule{Kind: models.AlertFall, Threshold: threshold(39000)}, fallTrend, fallChange, decimal.NewFromInt(39500), false},
		{"fall fires once under watched level", models.AlertRule{Kind: models.AlertFall, Threshold: threshold(39600)}, fallTrend, fallChange, decimal.NewFromInt(39500), true},
		{"rise suppressed below watched level", models.AlertRule{Kind: models.AlertRise, Threshold: threshold(45000)}, riseTrend, riseChange, decimal.NewFromInt(41000), false},
		{"rise fires past watched level", models.AlertRule{Kind: models.AlertRise, Threshold: threshold(40000)}, riseTrend, riseChange, decimal.NewFromInt(41000), true},
		{"any-change ignores threshold", models.AlertRule{Kind: models.AlertAnyChange, Threshold: threshold(99999)}, riseTrend, riseChange, decimal.NewFromInt(41000), true},
		{"stable fires nothing", models.AlertRule{Kind: models.AlertRise}, TrendStable, decimal.Zero, decimal.NewFromInt(40000), false},
		{"unknown kind fires nothing", models.AlertRule{Kind: "bogus"}, riseTrend, riseChange, decimal.NewFromInt(41000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuleQualifies(tt.rule, tt.trend, tt.change, tt.current); got != tt.want {
				t.Errorf("RuleQualifies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlertMessage(t *testing.T) {
	rise := AlertMessage(models.AlertRise, "Ciment", decimal.NewFromFloat(7.89))
	if rise != "Hausse de prix détectée pour Ciment: 7.89%" {
		t.Errorf("unexpected rise message: %s", rise)
	}

	fall := AlertMessage(models.AlertFall, "Ciment", decimal.NewFromFloat(-1.25))
	if fall != "Baisse de prix détectée pour Ciment: 1.25%" {
		t.Errorf("unexpected fall message: %s", fall)
	}

	change := AlertMessage(models.AlertAnyChange, "Ciment", decimal.NewFromFloat(7.89))
	if change != "Changement significatif de prix pour Ciment: +7.89%" {
		t.Errorf("unexpected change message: %s", change)
	}
}
