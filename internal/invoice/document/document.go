// Package document assembles a template-independent invoice document.
// Every value a layout needs is preformatted here, so templates only
// decide placement and styling, never content.
package document

import (
	"time"

	"github.com/billcraft/billcraft/internal/calc"
	clientdomain "github.com/billcraft/billcraft/internal/client/domain"
	"github.com/billcraft/billcraft/internal/format"
	"github.com/billcraft/billcraft/internal/invoice/domain"
	"github.com/billcraft/billcraft/internal/terms"
	"github.com/shopspring/decimal"
)

// DisplayDateLayout renders dates as "January 02, 2006".
const DisplayDateLayout = "January 02, 2006"

// TimestampLayout renders generation timestamps as
// "January 02, 2006 at 3:04 PM".
const TimestampLayout = "January 02, 2006 at 3:04 PM"

// Header identifies the document and the issuing company.
type Header struct {
	Title         string
	InvoiceNumber string
	CompanyName   string
	LogoPath      string
}

// Party is one side of the billing relationship.
type Party struct {
	Label   string
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
}

// PartyBlock pairs the issuer with the billed client.
type PartyBlock struct {
	From Party
	To   Party
}

// Detail is one labeled row in the invoice details block.
type Detail struct {
	Label string
	Value string
}

// ItemRow is one preformatted line of the item table.
type ItemRow struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// ItemTable carries the column headers and rows in insertion order.
type ItemTable struct {
	Headers []string
	Rows    []ItemRow
}

// TotalsBlock carries the formatted money summary. TaxLabel and
// TaxAmount are empty when no tax applies; templates render the tax
// row only when ShowTax is true.
type TotalsBlock struct {
	SubtotalLabel string
	Subtotal      string
	ShowTax       bool
	TaxLabel      string
	TaxAmount     string
	TotalLabel    string
	Total         string
}

// FooterBlock closes the document with a payment message and a
// generation timestamp.
type FooterBlock struct {
	Message     string
	GeneratedAt string
}

// Document is the complete assembled invoice, ready for any layout.
type Document struct {
	Header  Header
	Parties PartyBlock
	Details []Detail
	Items   ItemTable
	Totals  TotalsBlock
	Notes   string
	Footer  FooterBlock
}

// HasNotes reports whether a notes section should be rendered.
func (d Document) HasNotes() bool {
	return d.Notes != ""
}

// AssembleInput collects everything a document is built from. Now
// drives the generation timestamp and the overdue display status.
type AssembleInput struct {
	Invoice  domain.Invoice
	Client   clientdomain.Snapshot
	AppName  string
	LogoPath string
	Now      time.Time
}

// Assemble builds a Document from an invoice. Totals are recomputed
// from the line items rather than read from stored fields, so a
// document never disagrees with the calculation engine.
func Assemble(in AssembleInput) Document {
	inv := in.Invoice
	company := inv.Company()

	items := inv.LineItems()
	lineTotals := make([]decimal.Decimal, 0, len(items))
	rows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		total := item.Total()
		lineTotals = append(lineTotals, total)
		rows = append(rows, ItemRow{
			Description: item.Description,
			Quantity:    format.Quantity(item.Quantity),
			Rate:        format.Currency(item.Rate, inv.Currency),
			Amount:      format.Currency(total, inv.Currency),
		})
	}

	subtotal := calc.Subtotal(lineTotals)
	taxAmount := calc.TaxAmount(subtotal, inv.TaxRate)
	total := calc.Total(subtotal, taxAmount)

	showTax := inv.TaxRate.IsPositive()
	totals := TotalsBlock{
		SubtotalLabel: "Subtotal:",
		Subtotal:      format.Currency(subtotal, inv.Currency),
		ShowTax:       showTax,
		TotalLabel:    "Total:",
		Total:         format.Currency(total, inv.Currency),
	}
	if showTax {
		totals.TaxLabel = "Tax (" + format.Percentage(inv.TaxRate) + "):"
		totals.TaxAmount = format.Currency(taxAmount, inv.Currency)
	}

	return Document{
		Header: Header{
			Title:         "INVOICE",
			InvoiceNumber: inv.InvoiceNumber,
			CompanyName:   company.Name,
			LogoPath:      in.LogoPath,
		},
		Parties: PartyBlock{
			From: Party{
				Label:   "From:",
				Name:    company.Name,
				Address: company.Address,
				Phone:   company.Phone,
				Email:   company.Email,
				Website: company.Website,
			},
			To: Party{
				Label:   "Bill To:",
				Name:    in.Client.Name,
				Address: in.Client.FullAddress,
				Phone:   in.Client.Phone,
				Email:   in.Client.Email,
			},
		},
		Details: []Detail{
			{Label: "Invoice Date:", Value: inv.InvoiceDate.Format(DisplayDateLayout)},
			{Label: "Due Date:", Value: inv.DueDate.Format(DisplayDateLayout)},
			{Label: "Payment Terms:", Value: inv.PaymentTerms},
			{Label: "Status:", Value: string(inv.DisplayStatus(in.Now))},
		},
		Items: ItemTable{
			Headers: []string{"Description", "Quantity", "Rate", "Amount"},
			Rows:    rows,
		},
		Totals: totals,
		Notes:  inv.Notes,
		Footer: FooterBlock{
			Message:     footerMessage(inv),
			GeneratedAt: "Generated on " + in.Now.Format(TimestampLayout) + " by " + in.AppName,
		},
	}
}

// footerMessage follows the invoice's payment state: sent invoices ask
// for payment, everything else says thank you.
func footerMessage(inv domain.Invoice) string {
	if inv.Status != domain.StatusSent {
		return "Thank you for your business!"
	}
	if inv.PaymentTerms == terms.DueOnReceipt {
		return "Payment is due upon receipt of this invoice."
	}
	due := inv.DueDate.Format(DisplayDateLayout)
	return "Payment is due by " + due + ". Thank you for your business!"
}
