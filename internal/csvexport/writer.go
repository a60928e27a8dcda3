// Package csvexport writes invoice and client exports as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	clientdomain "github.com/billcraft/billcraft/internal/client/domain"
	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
)

// BOM is the UTF-8 byte order mark, written first so Excel on Windows
// detects the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// invoiceColumns defines the invoice export header row.
var invoiceColumns = []string{
	"Invoice Number",
	"Client",
	"Date",
	"Due Date",
	"Status",
	"Payment Terms",
	"Currency",
	"Items",
	"Subtotal",
	"Tax",
	"Total",
	"Notes",
}

// clientColumns defines the client export header row.
var clientColumns = []string{
	"Name",
	"Email",
	"Phone",
	"Address",
	"City",
	"State",
	"ZIP",
	"Country",
}

// exportDateLayout is the ISO date used inside export rows.
const exportDateLayout = "2006-01-02"

// InvoiceWriter exports invoice rows as CSV. Client names are looked
// up by the caller and passed alongside, keeping the writer free of
// database access.
type InvoiceWriter struct {
	csv *csv.Writer
}

// NewInvoiceWriter creates an InvoiceWriter that writes CSV to w.
func NewInvoiceWriter(w io.Writer) *InvoiceWriter {
	return &InvoiceWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the invoice header row.
func (w *InvoiceWriter) WriteHeader() error {
	return w.csv.Write(invoiceColumns)
}

// WriteInvoices converts a batch of invoices to CSV rows. clientNames
// maps client IDs to display names; missing entries read as "Unknown".
// Now drives the exported display status.
func (w *InvoiceWriter) WriteInvoices(invoices []invoicedomain.Invoice, clientNames map[int64]string, now time.Time) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i], clientNames, now)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *InvoiceWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *InvoiceWriter) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *invoicedomain.Invoice, clientNames map[int64]string, now time.Time) []string {
	clientName, ok := clientNames[int64(inv.ClientID)]
	if !ok {
		clientName = "Unknown"
	}

	row := make([]string, len(invoiceColumns))
	row[0] = inv.InvoiceNumber
	row[1] = clientName
	row[2] = formatDate(inv.InvoiceDate)
	row[3] = formatDate(inv.DueDate)
	row[4] = string(inv.DisplayStatus(now))
	row[5] = inv.PaymentTerms
	row[6] = inv.Currency
	row[7] = strconv.Itoa(len(inv.LineItems()))
	row[8] = inv.Subtotal.StringFixed(2)
	row[9] = inv.TaxAmount.StringFixed(2)
	row[10] = inv.Total.StringFixed(2)
	row[11] = inv.Notes
	return row
}

// ClientWriter exports client rows as CSV.
type ClientWriter struct {
	csv *csv.Writer
}

// NewClientWriter creates a ClientWriter that writes CSV to w.
func NewClientWriter(w io.Writer) *ClientWriter {
	return &ClientWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the client header row.
func (w *ClientWriter) WriteHeader() error {
	return w.csv.Write(clientColumns)
}

// WriteClients converts a batch of clients to CSV rows.
func (w *ClientWriter) WriteClients(clients []clientdomain.Client) error {
	for i := range clients {
		c := &clients[i]
		row := []string{
			c.Name,
			c.Email,
			c.Phone,
			c.Address,
			c.City,
			c.State,
			c.ZipCode,
			c.Country,
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *ClientWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *ClientWriter) Error() error {
	return w.csv.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportDateLayout)
}

// InvoiceFilename returns the dated export name for invoices:
// invoices_export_{YYYYMMDD}.csv.
func InvoiceFilename(now time.Time) string {
	return fmt.Sprintf("invoices_export_%s.csv", now.Format("20060102"))
}

// ClientFilename returns the dated export name for clients:
// clients_export_{YYYYMMDD}.csv.
func ClientFilename(now time.Time) string {
	return fmt.Sprintf("clients_export_%s.csv", now.Format("20060102"))
}
