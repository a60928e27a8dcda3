package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/settings/domain"
)

type repo struct{}

// Provide returns the gorm-backed settings repository.
func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Find(ctx context.Context, db *gorm.DB) (*domain.Settings, error) {
	var s domain.Settings
	err := db.WithContext(ctx).
		Order("id ASC").
		Take(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, s *domain.Settings) error {
	return db.WithContext(ctx).Save(s).Error
}
