package domain

import (
	"github.com/shopspring/decimal"
)

// NonNegative clamps negative amounts to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders d with exactly two decimals, rounding half away from
// zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
