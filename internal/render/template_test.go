package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/billcraft/billcraft/internal/invoice/document"
)

func testDocument(showTax bool) document.Document {
	totals := document.TotalsBlock{
		SubtotalLabel: "Subtotal:",
		Subtotal:      "$2,000.00",
		TotalLabel:    "Total:",
		Total:         "$2,170.00",
	}
	if showTax {
		totals.ShowTax = true
		totals.TaxLabel = "Tax (8.50%):"
		totals.TaxAmount = "$170.00"
	}

	return document.Document{
		Header: document.Header{
			Title:         "INVOICE",
			InvoiceNumber: "INV-0042",
			CompanyName:   "Acme Studio",
		},
		Parties: document.PartyBlock{
			From: document.Party{Label: "From:", Name: "Acme Studio"},
			To:   document.Party{Label: "Bill To:", Name: "Globex Corp"},
		},
		Details: []document.Detail{
			{Label: "Invoice Date:", Value: "March 15, 2025"},
			{Label: "Due Date:", Value: "April 14, 2025"},
			{Label: "Payment Terms:", Value: "Net 30"},
			{Label: "Status:", Value: "Draft"},
		},
		Items: document.ItemTable{
			Headers: []string{"Description", "Quantity", "Rate", "Amount"},
			Rows: []document.ItemRow{
				{Description: "Consulting", Quantity: "10", Rate: "$150.00", Amount: "$1,500.00"},
				{Description: "Documentation", Quantity: "4", Rate: "$125.00", Amount: "$500.00"},
			},
		},
		Totals: totals,
		Footer: document.FooterBlock{
			Message:     "Thank you for your business!",
			GeneratedAt: "Generated on April 01, 2025 at 2:05 PM by billcraft",
		},
	}
}

func TestRegistry_KnownTemplates(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{DefaultTemplate, ModernTemplate, ClassicTemplate, MinimalTemplate} {
		assert.Equal(t, name, r.Get(name).Name())
	}
}

func TestRegistry_UnknownFallsBackToDefault(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, DefaultTemplate, r.Get("xyz").Name())
	assert.Equal(t, DefaultTemplate, r.Get("").Name())
	// Lookup is case sensitive; a near miss still falls back.
	assert.Equal(t, DefaultTemplate, r.Get("modern").Name())
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{ClassicTemplate, DefaultTemplate, MinimalTemplate, ModernTemplate}, r.Names())
}

func TestLayouts_ProduceRows(t *testing.T) {
	r := NewRegistry()
	doc := testDocument(true)

	for _, name := range r.Names() {
		rows := r.Get(name).Layout(doc)
		assert.NotEmpty(t, rows, name)
	}
}

func TestLayout_TaxRowToggles(t *testing.T) {
	r := NewRegistry()

	for _, name := range r.Names() {
		tpl := r.Get(name)
		withTax := len(tpl.Layout(testDocument(true)))
		withoutTax := len(tpl.Layout(testDocument(false)))
		assert.Equal(t, 1, withTax-withoutTax, name)
	}
}

func TestLayout_NotesToggle(t *testing.T) {
	r := NewRegistry()

	doc := testDocument(false)
	noNotes := len(r.Get(DefaultTemplate).Layout(doc))

	doc.Notes = "Payable by bank transfer."
	withNotes := len(r.Get(DefaultTemplate).Layout(doc))
	assert.Greater(t, withNotes, noNotes)
}

func TestFilename(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Invoice_INV-0042_Globex_Corp_20250315.pdf",
		Filename("INV-0042", "Globex Corp", date))

	// Unsafe characters collapse to underscores.
	assert.Equal(t, "Invoice_INV_0042_O_Brien_Sons_20250315.pdf",
		Filename("INV/0042", "O'Brien & Sons", date))
}
