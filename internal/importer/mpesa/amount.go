package mpesa

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads a shilling amount such as "1,500.00", "-300" or
// "KES 2,800". Thousands separators and the currency code are ignored.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "KES")
	clean = strings.TrimPrefix(clean, "Ksh")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	return decimal.NewFromString(clean)
}
