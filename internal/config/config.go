package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Config holds application configuration. It is loaded once and passed
// explicitly to the components that need it; nothing reads it through a
// process-wide singleton.
type Config struct {
	AppName    string
	AppVersion string
	LogLevel   string

	// DBPath is the sqlite database file. ":memory:" is valid and used
	// by tests.
	DBPath    string
	ExportDir string
	LogoPath  string

	Defaults Defaults
	Limits   Limits
}

// Defaults are the user-adjustable seed values for new invoices.
type Defaults struct {
	Currency            string
	PaymentTerms        string
	PaymentTermsChoices []string
	InvoiceNumberFormat string
}

// Limits bound the values the validators accept.
type Limits struct {
	MinAmount       decimal.Decimal
	MaxAmount       decimal.Decimal
	MaxQuantity     decimal.Decimal
	MaxDescription  int
	MaxClientName   int
	MaxInvoiceItems int
}

// DefaultLimits returns the validation bounds the application ships with.
func DefaultLimits() Limits {
	return Limits{
		MinAmount:       decimal.RequireFromString("0.01"),
		MaxAmount:       decimal.RequireFromString("999999.99"),
		MaxQuantity:     decimal.NewFromInt(10000),
		MaxDescription:  500,
		MaxClientName:   100,
		MaxInvoiceItems: 50,
	}
}

// Load loads configuration from environment variables and a .env file.
func Load() Config {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := getenv("BILLCRAFT_DATA_DIR", filepath.Join(home, "Documents", "Billcraft"))

	return Config{
		AppName:    getenv("APP_SERVICE", "billcraft"),
		AppVersion: getenv("APP_VERSION", "1.0.0"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		DBPath:     getenv("BILLCRAFT_DB_PATH", filepath.Join(dataDir, "invoices.db")),
		ExportDir:  getenv("BILLCRAFT_EXPORT_DIR", filepath.Join(dataDir, "Exports")),
		LogoPath:   getenv("BILLCRAFT_LOGO_PATH", filepath.Join(dataDir, "assets", "logo.png")),
		Defaults: Defaults{
			Currency:            getenv("BILLCRAFT_DEFAULT_CURRENCY", "USD"),
			PaymentTerms:        getenv("BILLCRAFT_DEFAULT_TERMS", "Net 30"),
			PaymentTermsChoices: []string{"Net 15", "Net 30", "Net 45", "Due on Receipt", "Custom"},
			InvoiceNumberFormat: getenv("BILLCRAFT_INVOICE_FORMAT", "INV-{SEQ4}"),
		},
		Limits: DefaultLimits(),
	}
}

// Module wires Config for the application.
var Module = fx.Provide(Load)

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
