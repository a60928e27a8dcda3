package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/billcraft/billcraft/internal/config"
)

func TestValidateAmount_Boundaries(t *testing.T) {
	lim := config.DefaultLimits()

	assert.Error(t, ValidateAmount(d("0.00"), lim))
	assert.NoError(t, ValidateAmount(d("0.01"), lim))
	assert.NoError(t, ValidateAmount(d("999999.99"), lim))
	assert.Error(t, ValidateAmount(d("1000000.00"), lim))
	assert.Error(t, ValidateAmount(d("-5"), lim))
}

func TestValidateAmountInput(t *testing.T) {
	lim := config.DefaultLimits()

	assert.NoError(t, ValidateAmountInput("$1,234.56", lim))
	// Malformed input parses to zero, which is below the minimum.
	assert.Error(t, ValidateAmountInput("not a number", lim))
}

func TestValidateRate(t *testing.T) {
	lim := config.DefaultLimits()

	assert.NoError(t, ValidateRate(decimal.Zero, lim))
	assert.NoError(t, ValidateRate(d("150.00"), lim))
	assert.NoError(t, ValidateRate(d("999999.99"), lim))
	assert.Error(t, ValidateRate(d("1000000.00"), lim))
	assert.Error(t, ValidateRate(d("-0.01"), lim))
}

func TestValidateQuantity(t *testing.T) {
	lim := config.DefaultLimits()

	assert.Error(t, ValidateQuantity(decimal.Zero, lim))
	assert.Error(t, ValidateQuantity(d("-1"), lim))
	assert.NoError(t, ValidateQuantity(d("0.5"), lim))
	assert.NoError(t, ValidateQuantity(d("10000"), lim))

	err := ValidateQuantity(d("10000.01"), lim)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "10,000")
}

func TestValidateTaxRate(t *testing.T) {
	assert.NoError(t, ValidateTaxRate(decimal.Zero))
	assert.NoError(t, ValidateTaxRate(d("0.085")))
	assert.NoError(t, ValidateTaxRate(d("1")))
	assert.Error(t, ValidateTaxRate(d("1.01")))
	assert.Error(t, ValidateTaxRate(d("-0.01")))
}

func TestValidateDescription(t *testing.T) {
	lim := config.DefaultLimits()

	assert.Error(t, ValidateDescription("", lim))
	assert.NoError(t, ValidateDescription("Consulting services", lim))
	assert.NoError(t, ValidateDescription(strings.Repeat("a", 500), lim))
	assert.Error(t, ValidateDescription(strings.Repeat("a", 501), lim))
}
