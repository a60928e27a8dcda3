// Package money provides exact decimal helpers for currency math.
//
// Every monetary value in the application flows through
// shopspring/decimal; binary floating point is never used for amounts
// that are summed, compared, or persisted.
package money

import "github.com/shopspring/decimal"

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// centPlaces is the scale of every stored monetary value.
const centPlaces = 2

// ratePlaces is the scale of parsed percentage rates (0.085 = 8.5%).
const ratePlaces = 4

// D soft-parses s into a decimal. Malformed input yields zero, never
// an error; callers that must distinguish parse failures validate
// before calling.
func D(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// RoundCents rounds d to two decimal places, half away from zero.
// decimal.Round implements exactly that mode, so a value ending in .005
// always moves to .01 in magnitude.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centPlaces)
}

// RoundRate rounds a fractional tax/percentage rate to four places.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(ratePlaces)
}

// FromInt returns d as a whole-unit amount.
func FromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
