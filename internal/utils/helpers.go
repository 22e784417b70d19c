package utils

import (
	"github.com/shopspring/decimal"
)

// AveragePrice returns the mean of the given prices rounded to two decimals,
// zero for an empty slice.
func AveragePrice(prices []decimal.Decimal) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, price := range prices {
		sum = sum.Add(price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(prices)))).Round(2)
}
