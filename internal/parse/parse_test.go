package parse_test

import (
	"testing"

	"github.com/nikolayk812/storefront-cart/internal/parse"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "currency decorations: stripped", raw: "$12.50 USD", want: "12.5"},
		{name: "plain integer: ok", raw: "42", want: "42"},
		{name: "word: zero", raw: "free", want: "0"},
		{name: "empty: zero", raw: "", want: "0"},
		{name: "lone minus: zero", raw: "-", want: "0"},
		{name: "two dots: zero", raw: "1.2.3", want: "0"},
		{name: "inner minus: zero", raw: "1-2", want: "0"},
		{name: "leading dot: ok", raw: ".5", want: "0.5"},
		{name: "trailing dot: ok", raw: "12.", want: "12"},
		{name: "negative: kept", raw: "-3.25", want: "-3.25"},
		{name: "thousands separator: stripped", raw: "1,299.99", want: "1299.99"},
		{name: "exponent letter: stripped", raw: "1e3", want: "13"},
		{name: "many decimals: exact", raw: "9.999", want: "9.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse.Price(tt.raw)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "integer: ok", raw: "3", want: 3},
		{name: "fraction: floored", raw: "2.9", want: 2},
		{name: "negative: zero", raw: "-3", want: 0},
		{name: "zero: zero", raw: "0", want: 0},
		{name: "empty: zero", raw: "", want: 0},
		{name: "blank: zero", raw: "   ", want: 0},
		{name: "word: zero", raw: "two", want: 0},
		{name: "below one: zero", raw: "0.5", want: 0},
		{name: "padded: trimmed", raw: " 4 ", want: 4},
		{name: "exponent: ok", raw: "1e2", want: 100},
		{name: "infinity: zero", raw: "Infinity", want: 0},
		{name: "nan: zero", raw: "NaN", want: 0},
		{name: "huge: clamped", raw: "1e12", want: parse.MaxQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.Quantity(tt.raw))
		})
	}
}
