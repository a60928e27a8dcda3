package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.56", Currency(d("1234.56"), "USD"))
	assert.Equal(t, "€500.00", Currency(d("500"), "EUR"))
	assert.Equal(t, "£0.01", Currency(d("0.01"), "GBP"))
	assert.Equal(t, "C$99.90", Currency(d("99.9"), "CAD"))
	assert.Equal(t, "A$7.00", Currency(d("7"), "AUD"))

	// Unknown codes fall back to the dollar sign.
	assert.Equal(t, "$42.00", Currency(d("42"), "XXX"))
	assert.Equal(t, "$42.00", Currency(d("42"), ""))
}

func TestCurrency_Negative(t *testing.T) {
	assert.Equal(t, "-$1,500.25", Currency(d("-1500.25"), "USD"))
	assert.Equal(t, "-€0.01", Currency(d("-0.01"), "EUR"))
}

func TestCurrency_Grouping(t *testing.T) {
	assert.Equal(t, "$999,999.99", Currency(d("999999.99"), "USD"))
	assert.Equal(t, "$1,000,000.00", Currency(d("1000000"), "USD"))
	assert.Equal(t, "$100.00", Currency(d("100"), "USD"))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "8.50%", Percentage(d("0.085")))
	assert.Equal(t, "7.00%", Percentage(d("0.07")))
	assert.Equal(t, "0.00%", Percentage(decimal.Zero))
	assert.Equal(t, "100.00%", Percentage(d("1")))
}

func TestQuantity_StripsTrailingZeros(t *testing.T) {
	assert.Equal(t, "10", Quantity(d("10")))
	assert.Equal(t, "2.5", Quantity(d("2.50")))
	assert.Equal(t, "0.25", Quantity(d("0.25")))
	assert.Equal(t, "3", Quantity(d("3.000")))
}

func TestParseCurrency(t *testing.T) {
	assert.True(t, ParseCurrency("$1,234.56").Equal(d("1234.56")))
	assert.True(t, ParseCurrency("1500").Equal(d("1500")))
	assert.True(t, ParseCurrency("  €99.90 ").Equal(d("99.90")))
	assert.True(t, ParseCurrency("-$50.00").Equal(d("-50.00")))
}

func TestParseCurrency_MalformedYieldsZero(t *testing.T) {
	assert.True(t, ParseCurrency("abc").Equal(decimal.Zero))
	assert.True(t, ParseCurrency("").Equal(decimal.Zero))
	assert.True(t, ParseCurrency("1.2.3").Equal(decimal.Zero))
}

func TestParseCurrency_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "1234.56", "999999.99"} {
		amount := d(s)
		parsed := ParseCurrency(Currency(amount, "USD"))
		assert.True(t, parsed.Equal(amount), "round trip for %s", s)
	}
}

func TestParsePercentage(t *testing.T) {
	assert.True(t, ParsePercentage("8.5%").Equal(d("0.085")))
	assert.True(t, ParsePercentage("20").Equal(d("0.20")))
	assert.True(t, ParsePercentage("garbage").Equal(decimal.Zero))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("usd"))
	assert.Equal(t, "€", Symbol(" EUR "))
	assert.Equal(t, "$", Symbol("JPY"))
}
