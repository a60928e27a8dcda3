// Package format converts between typed monetary/percentage values and
// their textual representation, and validates raw text input.
package format

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft/pkg/money"
)

// currencySymbols is the fixed symbol table. Unknown codes fall back
// to the dollar sign.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
}

var numericChars = regexp.MustCompile(`[^0-9.\-]`)

// Symbol returns the display symbol for a currency code.
func Symbol(code string) string {
	if sym, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return sym
	}
	return "$"
}

// CurrencyCodes returns the known currency codes in display order.
func CurrencyCodes() []string {
	return []string{"USD", "EUR", "GBP", "CAD", "AUD"}
}

// Currency renders an amount with its currency symbol, thousands
// grouping, and exactly two decimal places. Negative amounts render as
// -<symbol><abs value>.
func Currency(amount decimal.Decimal, code string) string {
	sym := Symbol(code)
	if amount.IsNegative() {
		return "-" + sym + group(amount.Abs().StringFixed(2))
	}
	return sym + group(amount.StringFixed(2))
}

// Percentage renders a fractional rate as a percentage with two
// decimal places, e.g. 0.085 -> "8.50%".
func Percentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// Quantity renders a quantity with trailing zeros stripped.
func Quantity(q decimal.Decimal) string {
	s := q.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// ParseCurrency normalizes raw user input into a two-decimal amount.
// Every character that is not a digit, dot, or minus is stripped before
// parsing; malformed input yields 0.00 and never errors.
func ParseCurrency(input string) decimal.Decimal {
	cleaned := numericChars.ReplaceAllString(input, "")
	return money.RoundCents(money.D(cleaned))
}

// ParsePercentage normalizes raw percentage input ("8.5%" -> 0.085)
// rounded to four places. Malformed input yields 0.
func ParsePercentage(input string) decimal.Decimal {
	cleaned := numericChars.ReplaceAllString(input, "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return money.RoundRate(d.Div(decimal.NewFromInt(100)))
}

// group inserts thousands separators into the integer part of a fixed
// two-decimal string. The grouping is done on the exact decimal text
// rather than through a float-based printer so amounts never pass
// through binary floating point.
func group(fixed string) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		return b.String() + "." + fracPart
	}
	return b.String()
}
