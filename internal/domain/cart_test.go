package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	var cart domain.Cart

	assert.True(t, cart.Add("Mug", decimal.RequireFromString("9.999")))
	assert.True(t, cart.Add("Pen", decimal.RequireFromString("1.5")))
	assert.True(t, cart.Add("Mug", decimal.RequireFromString("100")))
	assert.False(t, cart.Add("", decimal.RequireFromString("1")))
	assert.True(t, cart.Add("Free", decimal.RequireFromString("-4")))

	want := []domain.LineItem{
		{Name: "Mug", UnitPrice: decimal.RequireFromString("9.999"), Quantity: 2},
		{Name: "Pen", UnitPrice: decimal.RequireFromString("1.5"), Quantity: 1},
		{Name: "Free", UnitPrice: decimal.Zero, Quantity: 1},
	}
	assert.Empty(t, cmp.Diff(want, cart.Items, decimalComparer))
}

func TestCartSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		qty       int
		wantOK    bool
		wantNames []string
		wantQty   []int
	}{
		{name: "set middle: ok", index: 1, qty: 7, wantOK: true, wantNames: []string{"a", "b", "c"}, wantQty: []int{1, 7, 1}},
		{name: "zero removes: ok", index: 1, qty: 0, wantOK: true, wantNames: []string{"a", "c"}, wantQty: []int{1, 1}},
		{name: "negative index: no-op", index: -1, qty: 3, wantNames: []string{"a", "b", "c"}, wantQty: []int{1, 1, 1}},
		{name: "past end: no-op", index: 3, qty: 3, wantNames: []string{"a", "b", "c"}, wantQty: []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := threeItemCart()

			ok := cart.SetQuantity(tt.index, tt.qty)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNames, names(cart))
			assert.Equal(t, tt.wantQty, quantities(cart))
		})
	}
}

func TestCartRemove(t *testing.T) {
	cart := threeItemCart()

	require.True(t, cart.Remove(0))
	assert.Equal(t, []string{"b", "c"}, names(cart))

	for _, i := range []int{-5, -1, 2, 10} {
		assert.False(t, cart.Remove(i))
	}
	assert.Equal(t, []string{"b", "c"}, names(cart))
}

func TestCartTotal(t *testing.T) {
	cart := domain.Cart{Items: []domain.LineItem{
		{Name: "Mug", UnitPrice: decimal.RequireFromString("9.999"), Quantity: 2},
		{Name: "Pen", UnitPrice: decimal.RequireFromString("1.5"), Quantity: 3},
	}}

	assert.Equal(t, "20.00", domain.FormatAmount(cart.Items[0].Total()))
	assert.Equal(t, "4.50", domain.FormatAmount(cart.Items[1].Total()))
	assert.Equal(t, "24.50", domain.FormatAmount(cart.Total()))
	assert.Equal(t, "0.00", domain.FormatAmount(domain.Cart{}.Total()))
}

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func threeItemCart() domain.Cart {
	return domain.Cart{Items: []domain.LineItem{
		{Name: "a", UnitPrice: decimal.NewFromInt(1), Quantity: 1},
		{Name: "b", UnitPrice: decimal.NewFromInt(2), Quantity: 1},
		{Name: "c", UnitPrice: decimal.NewFromInt(3), Quantity: 1},
	}}
}

func names(c domain.Cart) []string {
	result := make([]string, 0, len(c.Items))
	for _, li := range c.Items {
		result = append(result, li.Name)
	}
	return result
}

func quantities(c domain.Cart) []int {
	result := make([]int, 0, len(c.Items))
	for _, li := range c.Items {
		result = append(result, li.Quantity)
	}
	return result
}
