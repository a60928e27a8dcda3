// Package calc is the financial calculation engine.
//
// All operations are pure and referentially transparent. The rounding
// policy is round-half-up to two decimal places at every step: each
// intermediate result is stored already rounded before it feeds the
// next step. In particular the subtotal is a sum of already-rounded
// line totals, not a rounding of the exact sum. That ordering is what
// makes stored and recomputed totals reproducible to the cent.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft/pkg/money"
)

// LineInput is one billable line as seen by the engine.
type LineInput struct {
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

// Totals holds every derived monetary value for an invoice.
type Totals struct {
	LineTotals []decimal.Decimal
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	Total      decimal.Decimal
}

// LineTotal multiplies quantity by rate exactly, then rounds to cents.
func LineTotal(quantity, rate decimal.Decimal) decimal.Decimal {
	return money.RoundCents(quantity.Mul(rate))
}

// LineTotalFromStrings is the soft variant used behind raw form input.
// Malformed quantity or rate degrades to 0.00 and never errors; callers
// that need to distinguish "entered zero" from "failed to parse" must
// validate first.
func LineTotalFromStrings(quantity, rate string) decimal.Decimal {
	return LineTotal(money.D(quantity), money.D(rate))
}

// Subtotal sums already-rounded line totals and rounds the sum again.
func Subtotal(lineTotals []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range lineTotals {
		sum = sum.Add(t)
	}
	return money.RoundCents(sum)
}

// TaxAmount applies a fractional rate to an already-rounded subtotal.
func TaxAmount(subtotal, rate decimal.Decimal) decimal.Decimal {
	return money.RoundCents(subtotal.Mul(rate))
}

// Total adds two already-rounded two-decimal amounts. The addition is
// exact; the final round is a no-op for well-formed inputs.
func Total(subtotal, taxAmount decimal.Decimal) decimal.Decimal {
	return money.RoundCents(subtotal.Add(taxAmount))
}

// Compute derives every total for an invoice from its lines and tax
// rate. Recomputing from the same inputs yields identical results.
func Compute(lines []LineInput, taxRate decimal.Decimal) Totals {
	lineTotals := make([]decimal.Decimal, 0, len(lines))
	for _, l := range lines {
		lineTotals = append(lineTotals, LineTotal(l.Quantity, l.Rate))
	}

	subtotal := Subtotal(lineTotals)
	tax := TaxAmount(subtotal, taxRate)

	return Totals{
		LineTotals: lineTotals,
		Subtotal:   subtotal,
		TaxAmount:  tax,
		Total:      Total(subtotal, tax),
	}
}
