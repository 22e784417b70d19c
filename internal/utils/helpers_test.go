package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAveragePrice(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   string
	}{
		{"empty", nil, "0.00"},
		{"single", []float64{38500}, "38500.00"},
		{"two values", []float64{38000, 41000}, "39500.00"},
		{"repeating decimal rounds", []float64{100, 100, 101}, "100.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prices := make([]decimal.Decimal, 0, len(tt.prices))
			for _, p := range tt.prices {
				prices = append(prices, decimal.NewFromFloat(p))
			}
			if got := AveragePrice(prices).StringFixed(2); got != tt.want {
				t.Errorf("AveragePrice() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStringToUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{"42", 42},
		{"0", 0},
		{"", 0},
		{"-1", 0},
		{"abc", 0},
		{"4294967296", 0},
	}
	for _, tt := range tests {
		if got := StringToUint(tt.in); got != tt.want {
			t.Errorf("StringToUint(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
