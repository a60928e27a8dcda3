package migration

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRun_CreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migration_test?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, Run(db))

	for _, table := range []string{"clients", "invoices", "app_settings"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// Re-running is harmless.
	assert.NoError(t, Run(db))
}
