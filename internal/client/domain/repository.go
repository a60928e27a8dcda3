package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	Update(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Client, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Client, error)
	List(ctx context.Context, db *gorm.DB) ([]*Client, error)
	Search(ctx context.Context, db *gorm.DB, term string) ([]*Client, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
