package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Repository is the persistence port for invoices.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, inv *Invoice) error
	Update(ctx context.Context, db *gorm.DB, inv *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	FindByNumber(ctx context.Context, db *gorm.DB, number string) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	ListByStatus(ctx context.Context, db *gorm.DB, status Status) ([]Invoice, error)
	ListByClient(ctx context.Context, db *gorm.DB, clientID snowflake.ID) ([]Invoice, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
