package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidNumberFormat = errors.New("invalid_invoice_number_format")
	ErrInvalidTaxRate      = errors.New("invalid_default_tax_rate")
)

// Service is the settings use-case surface. Get never fails with "not
// found": a fresh database yields Defaults().
type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s Settings) (*Settings, error)

	// NextInvoiceNumber formats the next number from the configured
	// template and advances the sequence in the same transaction, so
	// concurrent callers never see the same number.
	NextInvoiceNumber(ctx context.Context, issuedAt time.Time) (string, error)
}
