// Package render projects a cart into the table the storefront shows.
package render

import (
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"golang.org/x/text/currency"
)

const EmptyMessage = "Cart is empty"

// DisplayModel is the cart table. When Empty is set Rows is nil and Total is
// blank; the table holds only the placeholder row.
type DisplayModel struct {
	Rows        []Row  `json:"rows"`
	Total       string `json:"total,omitempty"`
	Empty       bool   `json:"empty"`
	Placeholder string `json:"placeholder,omitempty"`
}

type Row struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type Renderer struct {
	symbol string
}

type Option func(*Renderer)

// WithCurrency prefixes every amount with the symbol of unit.
func WithCurrency(unit currency.Unit) Option {
	return func(r *Renderer) {
		r.symbol = Symbol(unit)
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the table for c. It has no side effects.
func (r *Renderer) Render(c domain.Cart) DisplayModel {
	if c.IsEmpty() {
		return DisplayModel{
			Empty:       true,
			Placeholder: EmptyMessage,
		}
	}

	rows := make([]Row, 0, len(c.Items))
	for i, li := range c.Items {
		rows = append(rows, Row{
			Index:     i,
			Name:      li.Name,
			Quantity:  li.Quantity,
			LineTotal: r.amount(li.Total()),
		})
	}

	return DisplayModel{
		Rows:  rows,
		Total: r.amount(c.Total()),
	}
}

// Render uses a renderer without a currency symbol.
func Render(c domain.Cart) DisplayModel {
	return New().Render(c)
}
