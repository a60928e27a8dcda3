package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/invoice/domain"
)

type repo struct{}

// Provide returns the gorm-backed invoice repository.
func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return db.WithContext(ctx).Create(inv).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return db.WithContext(ctx).Save(inv).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repo) FindByNumber(ctx context.Context, db *gorm.DB, number string) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).
		Where("invoice_number = ?", number).
		Take(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Order("invoice_date DESC, invoice_number DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *repo) ListByStatus(ctx context.Context, db *gorm.DB, status domain.Status) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("invoice_date DESC, invoice_number DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *repo) ListByClient(ctx context.Context, db *gorm.DB, clientID snowflake.ID) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("invoice_date DESC, invoice_number DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Invoice{}).Error
}
