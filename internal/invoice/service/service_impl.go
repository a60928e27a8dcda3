package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/format"
	"github.com/billcraft/billcraft/internal/invoice/domain"
	settingsdomain "github.com/billcraft/billcraft/internal/settings/domain"
	"github.com/billcraft/billcraft/internal/tax"
	"github.com/billcraft/billcraft/internal/terms"
	"github.com/billcraft/billcraft/pkg/db"
)

// Params holds service dependencies.
type Params struct {
	fx.In

	Cfg      config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Settings settingsdomain.Service
}

type service struct {
	cfg      config.Config
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	settings settingsdomain.Service
}

// New creates the invoice service.
func New(p Params) domain.Service {
	return &service{
		cfg:      p.Cfg,
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		settings: p.Settings,
	}
}

func (s *service) Save(ctx context.Context, req domain.SaveInvoiceRequest) (*domain.Invoice, error) {
	items, err := s.buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	taxName := req.TaxName
	if taxName == "" {
		taxName = tax.None
	}
	taxRate, err := tax.Resolve(taxName, req.CustomTaxRate)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !validStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	stg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	invoiceDate := req.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	paymentTerms := req.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = stg.DefaultPaymentTerms
	}
	currency := req.Currency
	if currency == "" {
		currency = stg.DefaultCurrency
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = terms.DueDate(invoiceDate, paymentTerms)
	}

	if req.ID == 0 {
		inv := &domain.Invoice{
			ID:           s.genID.Generate(),
			ClientID:     req.ClientID,
			InvoiceDate:  invoiceDate,
			DueDate:      dueDate,
			Status:       status,
			TaxName:      taxName,
			TaxRate:      taxRate,
			Notes:        strings.TrimSpace(req.Notes),
			PaymentTerms: paymentTerms,
			Currency:     currency,
		}
		inv.SetLineItems(items)
		inv.ApplyCompany(stg.Company())

		inv.InvoiceNumber = strings.TrimSpace(req.InvoiceNumber)
		if inv.InvoiceNumber == "" {
			number, err := s.settings.NextInvoiceNumber(ctx, invoiceDate)
			if err != nil {
				return nil, err
			}
			inv.InvoiceNumber = number
		}

		inv.Recalculate()

		if err := s.repo.Insert(ctx, s.db, inv); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return nil, domain.ErrDuplicateNumber
			}
			return nil, err
		}

		s.log.Info("invoice created",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.String("total", inv.Total.StringFixed(2)),
		)
		return inv, nil
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if req.InvoiceNumber != "" && req.InvoiceNumber != existing.InvoiceNumber {
		return nil, domain.ErrImmutableNumber
	}

	existing.ClientID = req.ClientID
	existing.InvoiceDate = invoiceDate
	existing.DueDate = dueDate
	existing.Status = status
	existing.TaxName = taxName
	existing.TaxRate = taxRate
	existing.Notes = strings.TrimSpace(req.Notes)
	existing.PaymentTerms = paymentTerms
	existing.Currency = currency
	existing.SetLineItems(items)
	existing.Recalculate()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return nil, err
	}

	s.log.Info("invoice updated",
		zap.String("invoice_number", existing.InvoiceNumber),
		zap.String("total", existing.Total.StringFixed(2)),
	)
	return existing, nil
}

func (s *service) GetByID(ctx context.Context, id snowflake.ID) (*domain.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	inv, err := s.repo.FindByNumber(ctx, s.db, number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (s *service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx, s.db)
}

func (s *service) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Invoice, error) {
	if !validStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, s.db, status)
}

func (s *service) ListByClient(ctx context.Context, clientID snowflake.ID) ([]domain.Invoice, error) {
	return s.repo.ListByClient(ctx, s.db, clientID)
}

// ListOverdue filters sent invoices in memory through the domain
// predicate instead of duplicating the date comparison in SQL.
func (s *service) ListOverdue(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	sent, err := s.repo.ListByStatus(ctx, s.db, domain.StatusSent)
	if err != nil {
		return nil, err
	}

	overdue := make([]domain.Invoice, 0, len(sent))
	for _, inv := range sent {
		if inv.Overdue(now) {
			overdue = append(overdue, inv)
		}
	}
	return overdue, nil
}

func (s *service) UpdateStatus(ctx context.Context, id snowflake.ID, status domain.Status) (*domain.Invoice, error) {
	if !validStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	existing.Status = status
	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return nil, err
	}

	s.log.Info("invoice status changed",
		zap.String("invoice_number", existing.InvoiceNumber),
		zap.String("status", string(status)),
	)
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id snowflake.ID) error {
	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, s.db, id)
}

// buildItems validates and converts caller input, preserving order.
// Amounts are recomputed unless the caller supplied one explicitly.
func (s *service) buildItems(inputs []domain.LineItemInput) ([]domain.LineItem, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoLineItems
	}

	lim := s.cfg.Limits
	items := make([]domain.LineItem, 0, len(inputs))
	for i, in := range inputs {
		description := strings.TrimSpace(in.Description)
		if err := format.ValidateDescription(description, lim); err != nil {
			return nil, itemErr(i, err)
		}
		if err := format.ValidateQuantity(in.Quantity, lim); err != nil {
			return nil, itemErr(i, err)
		}
		if err := format.ValidateRate(in.Rate, lim); err != nil {
			return nil, itemErr(i, err)
		}

		var item domain.LineItem
		if in.Amount != nil {
			item = domain.NewLineItemFixed(description, in.Quantity, in.Rate, *in.Amount)
		} else {
			item = domain.NewLineItem(description, in.Quantity, in.Rate)
		}

		// Free lines are allowed; anything charged must sit within the
		// configured bounds.
		if !item.Total().Equal(decimal.Zero) {
			if err := format.ValidateAmount(item.Total(), lim); err != nil {
				return nil, itemErr(i, err)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func itemErr(index int, err error) error {
	return fmt.Errorf("%w: line %d: %v", domain.ErrInvalidItem, index+1, err)
}

func validStatus(status domain.Status) bool {
	for _, s := range domain.StoredStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
