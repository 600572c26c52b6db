package accounting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a stored debit or credit amount. Missing or malformed
// values are treated as zero so a bad line never blocks a report.
func ParseAmount(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
