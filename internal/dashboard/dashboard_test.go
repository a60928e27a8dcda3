package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	clientdomain "github.com/billcraft/billcraft/internal/client/domain"
	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node, status invoicedomain.Status, total string, dueDate time.Time) {
	inv := invoicedomain.Invoice{
		ID:            node.Generate(),
		InvoiceNumber: fmt.Sprintf("INV-%d", node.Generate()),
		ClientID:      node.Generate(),
		InvoiceDate:   dueDate.AddDate(0, 0, -30),
		DueDate:       dueDate,
		Status:        status,
		PaymentTerms:  "Net 30",
		Currency:      "USD",
		Total:         d(total),
	}
	assert.NoError(t, db.Create(&inv).Error)
}

func TestStats(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&clientdomain.Client{}, &invoicedomain.Invoice{})
	assert.NoError(t, err)

	node, _ := snowflake.NewNode(1)
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	past := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"Acme Studio", "Globex Corp"} {
		assert.NoError(t, db.Create(&clientdomain.Client{ID: node.Generate(), Name: name}).Error)
	}

	seedInvoice(t, db, node, invoicedomain.StatusPaid, "1000.00", past)
	seedInvoice(t, db, node, invoicedomain.StatusPaid, "250.50", past)
	seedInvoice(t, db, node, invoicedomain.StatusSent, "300.00", past)   // overdue
	seedInvoice(t, db, node, invoicedomain.StatusSent, "400.00", future) // current
	seedInvoice(t, db, node, invoicedomain.StatusDraft, "75.25", future)
	seedInvoice(t, db, node, invoicedomain.StatusCancelled, "999.00", past)

	svc := New(Params{DB: db, Log: zap.NewNop()})
	stats, err := svc.Stats(context.Background(), now)
	assert.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalClients)
	assert.Equal(t, int64(6), stats.TotalInvoices)
	assert.Equal(t, int64(1), stats.DraftInvoices)
	assert.Equal(t, int64(2), stats.SentInvoices)
	assert.Equal(t, int64(2), stats.PaidInvoices)
	assert.Equal(t, int64(1), stats.CancelledInvoices)
	assert.Equal(t, int64(1), stats.OverdueInvoices)

	assert.True(t, stats.TotalRevenue.Equal(d("1250.50")))
	// Pending counts sent (overdue included) and draft.
	assert.True(t, stats.PendingRevenue.Equal(d("775.25")))
}

func TestStats_Empty(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&clientdomain.Client{}, &invoicedomain.Invoice{})
	assert.NoError(t, err)

	svc := New(Params{DB: db, Log: zap.NewNop()})
	stats, err := svc.Stats(context.Background(), time.Now())
	assert.NoError(t, err)

	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.TotalInvoices)
	assert.True(t, stats.TotalRevenue.Equal(decimal.Zero))
	assert.True(t, stats.PendingRevenue.Equal(decimal.Zero))
}
