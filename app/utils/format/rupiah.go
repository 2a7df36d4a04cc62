package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupiah = accounting.Accounting{Symbol: "Rp ", Precision: 2, Thousand: ".", Decimal: ","}

// Rupiah formats an amount as "Rp 1.234,50". Unparseable input formats as zero.
func Rupiah(amount interface{}) string {
	var d decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v != nil {
			d = *v
		}
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err == nil {
			d = parsed
		}
	}
	return rupiah.FormatMoneyDecimal(d)
}
