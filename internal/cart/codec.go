package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/parse"
	"github.com/shopspring/decimal"
)

// storedItem is the persisted shape: {"name": "...", "price": 1.5, "qty": 2}.
type storedItem struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Qty   int         `json:"qty"`
}

// looseItem accepts whatever JSON value sits in each field.
type looseItem struct {
	Name  json.RawMessage `json:"name"`
	Price json.RawMessage `json:"price"`
	Qty   json.RawMessage `json:"qty"`
}

func encode(c domain.Cart) ([]byte, error) {
	items := make([]storedItem, 0, len(c.Items))
	for _, li := range c.Items {
		items = append(items, storedItem{
			Name:  li.Name,
			Price: json.Number(li.UnitPrice.String()),
			Qty:   li.Quantity,
		})
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// decode rebuilds a cart from persisted bytes. Every field is run back
// through the parsers; elements that are not objects and lines that still
// break the cart invariants are dropped, and repeated names are folded into
// their first occurrence.
func decode(data []byte) (domain.Cart, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Cart{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var c domain.Cart
	for _, elem := range elems {
		var it looseItem
		if err := json.Unmarshal(elem, &it); err != nil {
			continue
		}

		name := text(it.Name)
		qty := quantity(it.Qty)
		if name == "" || qty == 0 {
			continue
		}

		if i := c.IndexOf(name); i >= 0 {
			c.Items[i].Quantity = min(c.Items[i].Quantity+qty, parse.MaxQuantity)
			continue
		}

		c.Items = append(c.Items, domain.LineItem{
			Name:      name,
			UnitPrice: domain.NonNegative(parse.Price(text(it.Price))),
			Quantity:  qty,
		})
	}

	return c, nil
}

// text turns a raw JSON value into the string a loosely typed client would
// see: strings unquoted, numbers in canonical form (1.5e2 reads 150), null
// and false empty.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n', 'f':
		return ""
	case 't':
		return string(raw)
	default:
		d, err := decimal.NewFromString(string(raw))
		if err != nil {
			return string(raw)
		}
		return d.String()
	}
}

func quantity(raw json.RawMessage) int {
	if string(bytes.TrimSpace(raw)) == "true" {
		return 1
	}
	return parse.Quantity(text(raw))
}
