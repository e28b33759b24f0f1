package render_test

import (
	"bytes"
	"testing"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		cart domain.Cart
		opts []render.Option
		want render.DisplayModel
	}{
		{
			name: "empty cart: placeholder only",
			cart: domain.Cart{},
			want: render.DisplayModel{Empty: true, Placeholder: render.EmptyMessage},
		},
		{
			name: "two lines: rounded totals",
			cart: domain.Cart{Items: []domain.LineItem{
				{Name: "Mug", UnitPrice: decimal.RequireFromString("9.999"), Quantity: 2},
				{Name: "Pen", UnitPrice: decimal.RequireFromString("1.5"), Quantity: 3},
			}},
			want: render.DisplayModel{
				Rows: []render.Row{
					{Index: 0, Name: "Mug", Quantity: 2, LineTotal: "20.00"},
					{Index: 1, Name: "Pen", Quantity: 3, LineTotal: "4.50"},
				},
				Total: "24.50",
			},
		},
		{
			name: "free item: zero total",
			cart: domain.Cart{Items: []domain.LineItem{
				{Name: "Sticker", UnitPrice: decimal.Zero, Quantity: 4},
			}},
			want: render.DisplayModel{
				Rows:  []render.Row{{Index: 0, Name: "Sticker", Quantity: 4, LineTotal: "0.00"}},
				Total: "0.00",
			},
		},
		{
			name: "total sums unrounded lines",
			cart: domain.Cart{Items: []domain.LineItem{
				{Name: "a", UnitPrice: decimal.RequireFromString("0.004"), Quantity: 1},
				{Name: "b", UnitPrice: decimal.RequireFromString("0.004"), Quantity: 1},
			}},
			want: render.DisplayModel{
				Rows: []render.Row{
					{Index: 0, Name: "a", Quantity: 1, LineTotal: "0.00"},
					{Index: 1, Name: "b", Quantity: 1, LineTotal: "0.00"},
				},
				Total: "0.01",
			},
		},
		{
			name: "display currency: symbol prefixed",
			cart: domain.Cart{Items: []domain.LineItem{
				{Name: "Mug", UnitPrice: decimal.RequireFromString("3"), Quantity: 1},
			}},
			opts: []render.Option{render.WithCurrency(currency.USD)},
			want: render.DisplayModel{
				Rows:  []render.Row{{Index: 0, Name: "Mug", Quantity: 1, LineTotal: "$3.00"}},
				Total: "$3.00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := render.New(tt.opts...)

			got := r.Render(tt.cart)
			assert.Equal(t, tt.want, got)
			// rendering twice gives the same table
			assert.Equal(t, got, r.Render(tt.cart))
		})
	}
}

func TestHTML(t *testing.T) {
	t.Run("empty cart: placeholder row", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render.HTML(&buf, render.Render(domain.Cart{})))

		assert.Contains(t, buf.String(), `<td colspan="3">Cart is empty</td>`)
		assert.NotContains(t, buf.String(), "Total")
	})

	t.Run("items: rows and total", func(t *testing.T) {
		c := domain.Cart{Items: []domain.LineItem{
			{Name: "<b>Mug</b>", UnitPrice: decimal.RequireFromString("9.999"), Quantity: 2},
		}}

		var buf bytes.Buffer
		require.NoError(t, render.HTML(&buf, render.Render(c)))

		out := buf.String()
		assert.Contains(t, out, `<td>&lt;b&gt;Mug&lt;/b&gt;</td>`)
		assert.Contains(t, out, `value="2" class="cart-qty" data-index="0"`)
		assert.Contains(t, out, `<button class="btn remove-item" data-index="0">Remove</button>`)
		assert.Contains(t, out, `<strong>20.00</strong>`)
	})
}

func TestParseCurrency(t *testing.T) {
	unit, err := render.ParseCurrency("")
	require.NoError(t, err)
	assert.Equal(t, "", render.Symbol(unit))

	unit, err = render.ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, "$", render.Symbol(unit))

	_, err = render.ParseCurrency("XXXX")
	require.Error(t, err)
}
