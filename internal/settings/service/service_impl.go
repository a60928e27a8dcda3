package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/invoice/format"
	"github.com/billcraft/billcraft/internal/settings/domain"
	"github.com/shopspring/decimal"
)

// Params holds service dependencies.
type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

// New creates the settings service.
func New(p Params) domain.Service {
	return &service{
		db:   p.DB,
		log:  p.Log.Named("settings.service"),
		repo: p.Repo,
	}
}

func (s *service) Get(ctx context.Context) (*domain.Settings, error) {
	existing, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		defaults := domain.Defaults()
		return &defaults, nil
	}
	return existing, nil
}

func (s *service) Save(ctx context.Context, in domain.Settings) (*domain.Settings, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.CompanyEmail = strings.TrimSpace(in.CompanyEmail)

	one := decimal.NewFromInt(1)
	if in.DefaultTaxRate.IsNegative() || in.DefaultTaxRate.GreaterThan(one) {
		return nil, domain.ErrInvalidTaxRate
	}

	if in.InvoiceNumberFormat == "" {
		in.InvoiceNumberFormat = format.DefaultInvoiceNumberTemplate
	}
	// Render once to catch unresolvable templates before they are stored.
	if _, err := format.InvoiceNumber(in.InvoiceNumberFormat, time.Now(), 1); err != nil {
		s.log.Warn("rejecting invoice number format", zap.String("format", in.InvoiceNumberFormat), zap.Error(err))
		return nil, domain.ErrInvalidNumberFormat
	}

	if in.NextInvoiceNumber < 1 {
		in.NextInvoiceNumber = 1
	}

	existing, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		in.ID = existing.ID
	}

	if err := s.repo.Upsert(ctx, s.db, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *service) NextInvoiceNumber(ctx context.Context, issuedAt time.Time) (string, error) {
	var number string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.Find(ctx, tx)
		if err != nil {
			return err
		}
		if current == nil {
			defaults := domain.Defaults()
			current = &defaults
		}

		number, err = format.InvoiceNumber(current.InvoiceNumberFormat, issuedAt, current.NextInvoiceNumber)
		if err != nil {
			return err
		}

		current.NextInvoiceNumber++
		return s.repo.Upsert(ctx, tx, current)
	})
	if err != nil {
		return "", err
	}

	return number, nil
}
