package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewLineItem_AlwaysRecomputes(t *testing.T) {
	item := NewLineItem("Consulting", d("10"), d("150"))
	assert.True(t, item.Amount.Equal(d("1500.00")))
	assert.False(t, item.Fixed)

	// Total recomputes even if the stored amount is tampered with.
	item.Amount = d("9999")
	assert.True(t, item.Total().Equal(d("1500.00")))
}

func TestNewLineItemFixed_PreservesZero(t *testing.T) {
	item := NewLineItemFixed("Goodwill discount line", d("1"), d("100"), decimal.Zero)
	assert.True(t, item.Fixed)
	assert.True(t, item.Total().Equal(decimal.Zero))
}

func TestRecalculate(t *testing.T) {
	inv := Invoice{TaxRate: d("0.085")}
	inv.SetLineItems([]LineItem{
		NewLineItem("Consulting", d("10"), d("150.00")),
		NewLineItem("Documentation", d("4"), d("125.00")),
	})

	inv.Recalculate()

	assert.True(t, inv.Subtotal.Equal(d("2000.00")))
	assert.True(t, inv.TaxAmount.Equal(d("170.00")))
	assert.True(t, inv.Total.Equal(d("2170.00")))
}

func TestRecalculate_NoTax(t *testing.T) {
	inv := Invoice{TaxRate: decimal.Zero}
	inv.SetLineItems([]LineItem{NewLineItem("Hosting", d("1"), d("25.00"))})

	inv.Recalculate()

	assert.True(t, inv.TaxAmount.Equal(decimal.Zero))
	assert.True(t, inv.Total.Equal(inv.Subtotal))
}

func TestOverdue(t *testing.T) {
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	after := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	onDue := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)

	sent := Invoice{Status: StatusSent, DueDate: due}
	assert.True(t, sent.Overdue(after))
	assert.False(t, sent.Overdue(onDue))

	// Only sent invoices go overdue.
	for _, status := range []Status{StatusDraft, StatusPaid, StatusCancelled} {
		inv := Invoice{Status: status, DueDate: due}
		assert.False(t, inv.Overdue(after), string(status))
	}
}

func TestDisplayStatus(t *testing.T) {
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	after := due.AddDate(0, 0, 10)

	inv := Invoice{Status: StatusSent, DueDate: due}
	assert.Equal(t, StatusOverdue, inv.DisplayStatus(after))
	assert.Equal(t, StatusSent, inv.DisplayStatus(due))

	paid := Invoice{Status: StatusPaid, DueDate: due}
	assert.Equal(t, StatusPaid, paid.DisplayStatus(after))
}

func TestLineItems_PreserveOrder(t *testing.T) {
	inv := Invoice{}
	items := []LineItem{
		NewLineItem("first", d("1"), d("1")),
		NewLineItem("second", d("1"), d("2")),
		NewLineItem("third", d("1"), d("3")),
	}
	inv.SetLineItems(items)

	got := inv.LineItems()
	assert.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Description)
	assert.Equal(t, "second", got[1].Description)
	assert.Equal(t, "third", got[2].Description)
}

func TestCompanySnapshot_RoundTrip(t *testing.T) {
	snap := CompanySnapshot{
		Name:    "Acme Studio",
		Address: "1 Main St",
		Phone:   "555-0100",
		Email:   "billing@acme.test",
		Website: "acme.test",
	}

	var inv Invoice
	inv.ApplyCompany(snap)
	assert.Equal(t, snap, inv.Company())
}
