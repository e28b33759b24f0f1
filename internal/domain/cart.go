package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Cart is the ordered list of line items. Names are unique, quantities are at
// least one and unit prices are never negative.
type Cart struct {
	Items []LineItem
}

type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total is UnitPrice * Quantity, unrounded.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// IndexOf returns the position of the line named name, or -1.
func (c Cart) IndexOf(name string) int {
	return slices.IndexFunc(c.Items, func(li LineItem) bool {
		return li.Name == name
	})
}

// Total sums the unrounded line totals.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.Total())
	}
	return total
}

// Add bumps the quantity of an existing line by one or appends a new line
// with quantity one. The price of an existing line is left untouched.
// An empty name is ignored.
func (c *Cart) Add(name string, unitPrice decimal.Decimal) bool {
	if name == "" {
		return false
	}

	if i := c.IndexOf(name); i >= 0 {
		c.Items[i].Quantity++
		return true
	}

	c.Items = append(c.Items, LineItem{
		Name:      name,
		UnitPrice: NonNegative(unitPrice),
		Quantity:  1,
	})
	return true
}

// SetQuantity sets the quantity of line i; zero or less removes the line.
// It reports false when i is out of bounds.
func (c *Cart) SetQuantity(i, qty int) bool {
	if !c.inBounds(i) {
		return false
	}

	if qty <= 0 {
		return c.Remove(i)
	}

	c.Items[i].Quantity = qty
	return true
}

// Remove deletes line i and shifts the following lines down.
func (c *Cart) Remove(i int) bool {
	if !c.inBounds(i) {
		return false
	}

	c.Items = slices.Delete(c.Items, i, i+1)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) inBounds(i int) bool {
	return i >= 0 && i < len(c.Items)
}
