package render

import (
	"fmt"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbolPrinter = message.NewPrinter(language.English)

// Symbol is the narrow display symbol of unit ("$" for USD), or "" for the
// zero unit.
func Symbol(unit currency.Unit) string {
	if unit == (currency.Unit{}) {
		return ""
	}
	return symbolPrinter.Sprint(currency.NarrowSymbol(unit))
}

// ParseCurrency accepts an ISO 4217 code; an empty code means no symbol.
func ParseCurrency(code string) (currency.Unit, error) {
	if code == "" {
		return currency.Unit{}, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return unit, nil
}

func (r *Renderer) amount(d decimal.Decimal) string {
	return r.symbol + domain.FormatAmount(d)
}
