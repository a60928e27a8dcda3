package format

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/billcraft/billcraft/internal/config"
)

// Validation failures are reported as plain errors carrying a
// human-readable reason; callers surface the message and re-prompt.
// They are never fatal.

// ValidateAmount checks a monetary value against the configured bounds.
// The minimum is inclusive: 0.01 passes, 0.00 fails.
func ValidateAmount(amount decimal.Decimal, lim config.Limits) error {
	if amount.LessThan(lim.MinAmount) {
		return fmt.Errorf("amount must be at least %s", Currency(lim.MinAmount, "USD"))
	}
	if amount.GreaterThan(lim.MaxAmount) {
		return fmt.Errorf("amount cannot exceed %s", Currency(lim.MaxAmount, "USD"))
	}
	return nil
}

// ValidateAmountInput parses raw text input and applies ValidateAmount.
func ValidateAmountInput(input string, lim config.Limits) error {
	return ValidateAmount(ParseCurrency(input), lim)
}

// ValidateRate checks a unit rate. Zero is allowed so a line can be
// given away; the upper bound matches the amount ceiling.
func ValidateRate(rate decimal.Decimal, lim config.Limits) error {
	if rate.IsNegative() {
		return fmt.Errorf("rate cannot be negative")
	}
	if rate.GreaterThan(lim.MaxAmount) {
		return fmt.Errorf("rate cannot exceed %s", Currency(lim.MaxAmount, "USD"))
	}
	return nil
}

// ValidateQuantity checks a quantity: strictly positive, bounded above.
func ValidateQuantity(quantity decimal.Decimal, lim config.Limits) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity must be greater than 0")
	}
	if quantity.GreaterThan(lim.MaxQuantity) {
		return fmt.Errorf("quantity cannot exceed %s", group(lim.MaxQuantity.StringFixed(0)))
	}
	return nil
}

// ValidateTaxRate checks a fractional rate: 0 through 1 (100%).
func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("tax rate cannot be negative")
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate cannot exceed 100%%")
	}
	return nil
}

// ValidateDescription checks a line-item description.
func ValidateDescription(description string, lim config.Limits) error {
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > lim.MaxDescription {
		return fmt.Errorf("description cannot exceed %d characters", lim.MaxDescription)
	}
	return nil
}
