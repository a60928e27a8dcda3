// Package db opens the local sqlite store.
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/config"
)

// Open opens (creating if needed) the sqlite database at the configured
// path. The driver is pure Go, so the binary stays cgo-free.
func Open(cfg config.Config) (*gorm.DB, error) {
	path := cfg.DBPath
	if path == "" {
		path = "invoices.db"
	}

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	return gdb, nil
}

// Module wires the database handle for the application.
var Module = fx.Provide(Open)
