// Package dashboard aggregates summary statistics for the home view.
package dashboard

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	clientdomain "github.com/billcraft/billcraft/internal/client/domain"
	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
)

// Stats is the dashboard snapshot. Overdue is computed from sent
// invoices past their due date; it never comes from a stored status.
type Stats struct {
	TotalClients  int64
	TotalInvoices int64

	DraftInvoices     int64
	SentInvoices      int64
	PaidInvoices      int64
	CancelledInvoices int64
	OverdueInvoices   int64

	// TotalRevenue sums paid invoice totals. PendingRevenue sums
	// draft and sent totals, overdue included.
	TotalRevenue   decimal.Decimal
	PendingRevenue decimal.Decimal
}

// Params holds service dependencies.
type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

// Service computes dashboard statistics.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates the dashboard service.
func New(p Params) *Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

// Stats gathers the current snapshot. Now drives the overdue count.
func (s *Service) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	var out Stats

	if err := s.db.WithContext(ctx).
		Model(&clientdomain.Client{}).
		Count(&out.TotalClients).Error; err != nil {
		return nil, err
	}

	var invoices []invoicedomain.Invoice
	if err := s.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, err
	}

	out.TotalInvoices = int64(len(invoices))
	byStatus := lo.CountValuesBy(invoices, func(inv invoicedomain.Invoice) invoicedomain.Status {
		return inv.Status
	})
	out.DraftInvoices = int64(byStatus[invoicedomain.StatusDraft])
	out.SentInvoices = int64(byStatus[invoicedomain.StatusSent])
	out.PaidInvoices = int64(byStatus[invoicedomain.StatusPaid])
	out.CancelledInvoices = int64(byStatus[invoicedomain.StatusCancelled])

	out.OverdueInvoices = int64(lo.CountBy(invoices, func(inv invoicedomain.Invoice) bool {
		return inv.Overdue(now)
	}))

	out.TotalRevenue = sumTotals(invoices, invoicedomain.StatusPaid)
	out.PendingRevenue = sumTotals(invoices, invoicedomain.StatusSent, invoicedomain.StatusDraft)

	return &out, nil
}

func sumTotals(invoices []invoicedomain.Invoice, statuses ...invoicedomain.Status) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if lo.Contains(statuses, inv.Status) {
			sum = sum.Add(inv.Total)
		}
	}
	return sum
}

var Module = fx.Module("dashboard.service",
	fx.Provide(New),
)
