// Package tax holds the fixed tax-selection table.
package tax

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Selection names. Custom carries a user-supplied rate instead of a
// table entry.
const (
	None       = "None"
	SalesTax7  = "Sales Tax (7%)"
	SalesTax85 = "Sales Tax (8.5%)"
	SalesTax10 = "Sales Tax (10%)"
	VAT20      = "VAT (20%)"
	Custom     = "Custom"
)

var (
	ErrUnknownSelection = errors.New("unknown tax selection")
	ErrInvalidRate      = errors.New("tax rate must be between 0 and 1")
)

var rates = map[string]decimal.Decimal{
	None:       decimal.Zero,
	SalesTax7:  decimal.RequireFromString("0.07"),
	SalesTax85: decimal.RequireFromString("0.085"),
	SalesTax10: decimal.RequireFromString("0.10"),
	VAT20:      decimal.RequireFromString("0.20"),
}

// Names returns the selection names in display order.
func Names() []string {
	return []string{None, SalesTax7, SalesTax85, SalesTax10, VAT20, Custom}
}

// Resolve maps a selection name to its fractional rate. Custom
// validates and returns the supplied rate; unknown names resolve to
// zero alongside ErrUnknownSelection. The returned rate is always in
// [0, 1].
func Resolve(name string, custom decimal.Decimal) (decimal.Decimal, error) {
	if name == Custom {
		if custom.IsNegative() || custom.GreaterThan(decimal.NewFromInt(1)) {
			return decimal.Zero, ErrInvalidRate
		}
		return custom, nil
	}
	rate, ok := rates[name]
	if !ok {
		return decimal.Zero, ErrUnknownSelection
	}
	return rate, nil
}

// RateFor is the soft lookup used for display: unknown names read as
// zero.
func RateFor(name string) decimal.Decimal {
	return rates[name]
}
