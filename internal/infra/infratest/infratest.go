// Package infratest opens throwaway databases for tests.
package infratest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"qtravel/internal/infra"
	"qtravel/internal/logger"
)

// SQLiteConfig returns a migrated, foreign-key enforcing in-memory database
// config. Every call names a fresh database.
func SQLiteConfig() infra.StorageConfig {
	return infra.StorageConfig{
		Driver:      infra.DriverSQLite,
		DSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		AutoMigrate: true,
		LogLevel:    "silent",
	}
}

// OpenSQLite opens a database from SQLiteConfig and closes it when t ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := infra.OpenDatabase(SQLiteConfig(), logger.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		infra.CloseDatabase(db, logger.Nop())
	})
	return db
}
