package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/client/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":       client.Name,
			"email":      client.Email,
			"phone":      client.Phone,
			"address":    client.Address,
			"city":       client.City,
			"state":      client.State,
			"zip_code":   client.ZipCode,
			"country":    client.Country,
			"notes":      client.Notes,
			"updated_at": client.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).
		Where("name = ?", name).
		Take(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Client, error) {
	var clients []*domain.Client
	err := db.WithContext(ctx).
		Order("name asc").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, term string) ([]*domain.Client, error) {
	var clients []*domain.Client
	pattern := "%" + term + "%"
	err := db.WithContext(ctx).
		Where("name LIKE ? OR email LIKE ?", pattern, pattern).
		Order("name asc").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Client{}).Error
}
