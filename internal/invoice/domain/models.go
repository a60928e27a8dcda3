// Package domain contains the invoice aggregate and its line items.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/billcraft/billcraft/internal/calc"
	"github.com/billcraft/billcraft/internal/terms"
)

// Status represents invoice lifecycle states. Overdue is a computed
// display label, never stored: see Invoice.Overdue.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSent      Status = "Sent"
	StatusPaid      Status = "Paid"
	StatusOverdue   Status = "Overdue"
	StatusCancelled Status = "Cancelled"
)

// StoredStatuses are the states an invoice row may carry.
func StoredStatuses() []Status {
	return []Status{StatusDraft, StatusSent, StatusPaid, StatusCancelled}
}

// LineItem is one billable row on an invoice. Amount is derived from
// Quantity and Rate; see NewLineItem and NewLineItemFixed.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	// Fixed marks an amount deliberately supplied by the caller; it is
	// preserved as-is, even when zero, instead of being recomputed.
	Fixed bool `json:"fixed,omitempty"`
}

// NewLineItem builds a line whose amount is always recomputed from
// quantity and rate under the engine's rounding policy.
func NewLineItem(description string, quantity, rate decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      calc.LineTotal(quantity, rate),
	}
}

// NewLineItemFixed builds a line carrying an explicit caller-supplied
// amount. A zero fixed amount stays zero, so a free line item is
// expressible without being mistaken for "not yet computed".
func NewLineItemFixed(description string, quantity, rate, amount decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      amount,
		Fixed:       true,
	}
}

// Total returns the effective line total: fixed amounts as supplied,
// everything else recomputed.
func (li LineItem) Total() decimal.Decimal {
	if li.Fixed {
		return li.Amount
	}
	return calc.LineTotal(li.Quantity, li.Rate)
}

// Invoice is the persisted aggregate. Company fields are a snapshot
// copied in at creation time and frozen per invoice.
type Invoice struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	InvoiceNumber string       `gorm:"not null;uniqueIndex" json:"invoice_number"`
	ClientID      snowflake.ID `gorm:"not null;index" json:"client_id"`

	InvoiceDate time.Time `gorm:"not null" json:"invoice_date"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	Status      Status    `gorm:"type:text;not null;default:'Draft';index" json:"status"`

	Items datatypes.JSONType[[]LineItem] `gorm:"type:json" json:"items"`

	TaxName string          `gorm:"type:text;not null;default:'None'" json:"tax_name"`
	TaxRate decimal.Decimal `gorm:"type:numeric" json:"tax_rate"`

	Subtotal  decimal.Decimal `gorm:"type:numeric" json:"subtotal"`
	TaxAmount decimal.Decimal `gorm:"type:numeric" json:"tax_amount"`
	Total     decimal.Decimal `gorm:"type:numeric" json:"total"`

	Notes        string `gorm:"type:text" json:"notes,omitempty"`
	PaymentTerms string `gorm:"type:text;not null;default:'Net 30'" json:"payment_terms"`
	Currency     string `gorm:"type:text;not null;default:'USD'" json:"currency"`

	CompanyName    string `gorm:"type:text" json:"company_name,omitempty"`
	CompanyAddress string `gorm:"type:text" json:"company_address,omitempty"`
	CompanyPhone   string `gorm:"type:text" json:"company_phone,omitempty"`
	CompanyEmail   string `gorm:"type:text" json:"company_email,omitempty"`
	CompanyWebsite string `gorm:"type:text" json:"company_website,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LineItems returns the ordered item list.
func (i Invoice) LineItems() []LineItem {
	return i.Items.Data()
}

// SetLineItems replaces the item list, preserving order.
func (i *Invoice) SetLineItems(items []LineItem) {
	i.Items = datatypes.NewJSONType(items)
}

// Recalculate rederives subtotal, tax, and total from the current item
// list and tax rate. Stored totals are never authoritative; this runs
// on every mutation.
func (i *Invoice) Recalculate() {
	items := i.LineItems()
	lineTotals := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		lineTotals = append(lineTotals, item.Total())
	}

	i.Subtotal = calc.Subtotal(lineTotals)
	i.TaxAmount = calc.TaxAmount(i.Subtotal, i.TaxRate)
	i.Total = calc.Total(i.Subtotal, i.TaxAmount)
}

// Overdue reports whether this invoice is sent and past its due date.
// Dashboard counts, list filters, and display labels all go through
// this one predicate.
func (i Invoice) Overdue(now time.Time) bool {
	return i.Status == StatusSent && terms.PastDue(i.DueDate, now)
}

// DisplayStatus returns the stored status, or Overdue for sent invoices
// past their due date.
func (i Invoice) DisplayStatus(now time.Time) Status {
	if i.Overdue(now) {
		return StatusOverdue
	}
	return i.Status
}

// CompanySnapshot is the frozen issuer identity embedded per invoice.
type CompanySnapshot struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
}

// Company returns the issuer snapshot frozen into this invoice.
func (i Invoice) Company() CompanySnapshot {
	return CompanySnapshot{
		Name:    i.CompanyName,
		Address: i.CompanyAddress,
		Phone:   i.CompanyPhone,
		Email:   i.CompanyEmail,
		Website: i.CompanyWebsite,
	}
}

// ApplyCompany copies the snapshot into the invoice's frozen fields.
func (i *Invoice) ApplyCompany(c CompanySnapshot) {
	i.CompanyName = c.Name
	i.CompanyAddress = c.Address
	i.CompanyPhone = c.Phone
	i.CompanyEmail = c.Email
	i.CompanyWebsite = c.Website
}
