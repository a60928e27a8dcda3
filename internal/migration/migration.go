// Package migration keeps the local SQLite schema in sync on startup,
// so the app is usable out of the box with no manual setup.
package migration

import (
	"gorm.io/gorm"

	clientdomain "github.com/billcraft/billcraft/internal/client/domain"
	invoicedomain "github.com/billcraft/billcraft/internal/invoice/domain"
	settingsdomain "github.com/billcraft/billcraft/internal/settings/domain"
)

// Run migrates all persisted models.
func Run(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&clientdomain.Client{},
		&invoicedomain.Invoice{},
		&settingsdomain.Settings{},
	)
}
