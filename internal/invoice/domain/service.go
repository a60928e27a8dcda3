package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("invoice_not_found")
	ErrDuplicateNumber = errors.New("duplicate_invoice_number")
	ErrNoLineItems     = errors.New("invoice_has_no_line_items")
	ErrImmutableNumber = errors.New("invoice_number_is_immutable")
	ErrInvalidStatus   = errors.New("invalid_invoice_status")
	ErrInvalidItem     = errors.New("invalid_line_item")
)

// LineItemInput is a caller-supplied invoice line. When Amount is nil
// the line total is computed from quantity and rate; a non-nil Amount
// is preserved as a fixed amount.
type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      *decimal.Decimal
}

// SaveInvoiceRequest creates or updates an invoice. ID zero means
// create. InvoiceNumber is only honored on create; on update the stored
// number is immutable and a differing value is rejected. A zero DueDate
// derives the due date from the payment terms.
type SaveInvoiceRequest struct {
	ID            snowflake.ID
	InvoiceNumber string
	ClientID      snowflake.ID
	InvoiceDate   time.Time
	DueDate       time.Time
	PaymentTerms  string
	Status        Status
	Items         []LineItemInput
	TaxName       string
	CustomTaxRate decimal.Decimal
	Notes         string
	Currency      string
}

// Service is the invoice use-case surface.
type Service interface {
	Save(ctx context.Context, req SaveInvoiceRequest) (*Invoice, error)
	GetByID(ctx context.Context, id snowflake.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
	ListByStatus(ctx context.Context, status Status) ([]Invoice, error)
	ListByClient(ctx context.Context, clientID snowflake.ID) ([]Invoice, error)
	ListOverdue(ctx context.Context, now time.Time) ([]Invoice, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status Status) (*Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error
}
