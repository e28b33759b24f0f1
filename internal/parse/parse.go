// Package parse turns untrusted strings into the numeric values a cart holds.
// The parsers never fail: anything unusable degrades to zero.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps parsed quantities so they fit a 32-bit column.
const MaxQuantity = math.MaxInt32

var (
	nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)
	// numeric literal left after stripping: "12", "12.", ".5", "-0.25"
	numberLiteral = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)$`)
)

// Price strips every character that is not a digit, dot or minus sign and
// converts what is left. Empty or malformed remainders yield zero.
func Price(raw string) decimal.Decimal {
	s := nonNumeric.ReplaceAllString(raw, "")
	if s == "" || !numberLiteral.MatchString(s) {
		return decimal.Zero
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}

	return d
}

// Quantity converts raw to a whole quantity. Zero means "remove the line":
// it is returned for empty, non-finite, zero and negative input.
func Quantity(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}

	f = math.Floor(f)
	if f > MaxQuantity {
		return MaxQuantity
	}

	return int(f)
}
