package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolve_TableEntries(t *testing.T) {
	cases := map[string]string{
		None:       "0",
		SalesTax7:  "0.07",
		SalesTax85: "0.085",
		SalesTax10: "0.10",
		VAT20:      "0.20",
	}

	for name, want := range cases {
		rate, err := Resolve(name, decimal.Zero)
		assert.NoError(t, err, name)
		assert.True(t, rate.Equal(d(want)), name)
	}
}

func TestResolve_Custom(t *testing.T) {
	rate, err := Resolve(Custom, d("0.0625"))
	assert.NoError(t, err)
	assert.True(t, rate.Equal(d("0.0625")))

	_, err = Resolve(Custom, d("1.5"))
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = Resolve(Custom, d("-0.01"))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestResolve_UnknownIsZero(t *testing.T) {
	rate, err := Resolve("Luxury Tax (99%)", decimal.Zero)
	assert.ErrorIs(t, err, ErrUnknownSelection)
	assert.True(t, rate.Equal(decimal.Zero))
}

func TestRateFor_SoftLookup(t *testing.T) {
	assert.True(t, RateFor(VAT20).Equal(d("0.20")))
	assert.True(t, RateFor("nope").Equal(decimal.Zero))
}

func TestNames_Order(t *testing.T) {
	assert.Equal(t, []string{None, SalesTax7, SalesTax85, SalesTax10, VAT20, Custom}, Names())
}
