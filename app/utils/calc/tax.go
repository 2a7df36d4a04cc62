package calc

import "github.com/shopspring/decimal"

// DefaultTaxPercent is used when no tax rate is configured.
var DefaultTaxPercent = decimal.NewFromInt(12)

func GetTaxPercent() decimal.Decimal {
	return DefaultTaxPercent
}

// CalculateTax applies taxPercent to baseTotal, rounded to cents.
func CalculateTax(baseTotal, taxPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(taxPercent).Div(decimal.NewFromInt(100)).Round(2)
}

func CalculateGrandTotal(baseTotal, taxAmount, discountAmount decimal.Decimal) decimal.Decimal {
	return baseTotal.Add(taxAmount).Sub(discountAmount)
}

// OrderTotal is subtotal + shipping + tax - discount.
func OrderTotal(subtotal, shipping, tax, discount decimal.Decimal) decimal.Decimal {
	return CalculateGrandTotal(subtotal.Add(shipping), tax, discount).Round(2)
}

// LineTotal is quantity x unitPrice.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
