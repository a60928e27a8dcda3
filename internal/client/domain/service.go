package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// SaveClientRequest carries the editable client fields. ID zero means
// insert; non-zero means update in place.
type SaveClientRequest struct {
	ID      snowflake.ID
	Name    string `validate:"required,max=100"`
	Email   string `validate:"omitempty,email"`
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
	Notes   string
}

type Service interface {
	Save(ctx context.Context, req SaveClientRequest) (Client, error)
	GetByID(ctx context.Context, id snowflake.ID) (Client, error)
	GetByName(ctx context.Context, name string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Search(ctx context.Context, term string) ([]Client, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidPhone    = errors.New("invalid_phone")
	ErrDuplicateClient = errors.New("duplicate_client")
	ErrNotFound        = errors.New("not_found")
)
