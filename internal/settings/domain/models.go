// Package domain holds the application settings singleton.
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
	"github.com/billcraft/billcraft/internal/invoice/format"
)

// Settings is a single-row table: the company profile, invoicing
// defaults, and the invoice number sequence live here.
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyName    string `gorm:"type:text" json:"company_name"`
	CompanyAddress string `gorm:"type:text" json:"company_address"`
	CompanyPhone   string `gorm:"type:text" json:"company_phone"`
	CompanyEmail   string `gorm:"type:text" json:"company_email"`
	CompanyWebsite string `gorm:"type:text" json:"company_website"`

	DefaultCurrency     string          `gorm:"type:text;not null;default:'USD'" json:"default_currency"`
	DefaultTaxRate      decimal.Decimal `gorm:"type:numeric" json:"default_tax_rate"`
	DefaultPaymentTerms string          `gorm:"type:text;not null;default:'Net 30'" json:"default_payment_terms"`

	InvoiceNumberFormat string `gorm:"type:text;not null;default:'INV-{SEQ4}'" json:"invoice_number_format"`
	NextInvoiceNumber   int64  `gorm:"not null;default:1" json:"next_invoice_number"`

	AutoBackup      bool       `gorm:"not null;default:true" json:"auto_backup"`
	BackupFrequency int        `gorm:"not null;default:7" json:"backup_frequency"`
	LastBackup      *time.Time `json:"last_backup,omitempty"`

	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Settings) TableName() string { return "app_settings" }

// Defaults returns the settings used before the user has saved any.
func Defaults() Settings {
	return Settings{
		DefaultCurrency:     "USD",
		DefaultPaymentTerms: "Net 30",
		InvoiceNumberFormat: format.DefaultInvoiceNumberTemplate,
		NextInvoiceNumber:   1,
		AutoBackup:          true,
		BackupFrequency:     7,
	}
}

// Company returns the issuer snapshot invoices freeze at creation.
func (s Settings) Company() invoicedomain.CompanySnapshot {
	return invoicedomain.CompanySnapshot{
		Name:    s.CompanyName,
		Address: s.CompanyAddress,
		Phone:   s.CompanyPhone,
		Email:   s.CompanyEmail,
		Website: s.CompanyWebsite,
	}
}
