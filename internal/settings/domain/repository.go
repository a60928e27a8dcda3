package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the persistence port for the settings row.
type Repository interface {
	Find(ctx context.Context, db *gorm.DB) (*Settings, error)
	Upsert(ctx context.Context, db *gorm.DB, s *Settings) error
}
