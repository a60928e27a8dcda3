// Package domain contains the client (the billed party) models.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is the billed party. Name is the unique business key.
type Client struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null;uniqueIndex" json:"name"`
	Email     string       `gorm:"type:text" json:"email,omitempty"`
	Phone     string       `gorm:"type:text" json:"phone,omitempty"`
	Address   string       `gorm:"type:text" json:"address,omitempty"`
	City      string       `gorm:"type:text" json:"city,omitempty"`
	State     string       `gorm:"type:text" json:"state,omitempty"`
	ZipCode   string       `gorm:"type:text" json:"zip_code,omitempty"`
	Country   string       `gorm:"type:text" json:"country,omitempty"`
	Notes     string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }

// FullAddress composes the multi-line postal address. The city, state,
// and zip are comma-joined on one line; street, that line, and country
// are newline-joined; empty parts are omitted entirely.
func (c Client) FullAddress() string {
	var groups []string

	if c.Address != "" {
		groups = append(groups, c.Address)
	}

	var cityLine []string
	for _, part := range []string{c.City, c.State, c.ZipCode} {
		if part != "" {
			cityLine = append(cityLine, part)
		}
	}
	if len(cityLine) > 0 {
		groups = append(groups, strings.Join(cityLine, ", "))
	}

	if c.Country != "" {
		groups = append(groups, c.Country)
	}

	return strings.Join(groups, "\n")
}

// Snapshot is the read-only view of a client handed to document
// assembly and rendering. It is copied out of the record so later
// edits never reach an already-assembled document.
type Snapshot struct {
	Name        string
	Email       string
	Phone       string
	FullAddress string
}

// Snapshot freezes the client's display fields.
func (c Client) Snapshot() Snapshot {
	return Snapshot{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		FullAddress: c.FullAddress(),
	}
}
