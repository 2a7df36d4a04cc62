package calc

import "github.com/shopspring/decimal"

// AverageRating returns sum/count rounded to two places, or zero when count is zero.
func AverageRating(sum, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)).Round(2)
}
