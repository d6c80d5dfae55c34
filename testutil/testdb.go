package testutil

import (
	"testing"

	"github.com/koldo-a/backend-2/config"
	"github.com/koldo-a/backend-2/database"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database with foreign keys on.
// The pool is pinned to one connection because every new SQLite memory
// connection would otherwise see an empty database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.ConnectToDB(&config.Config{
		DatabaseURL:    "file::memory:?_foreign_keys=on",
		DBLogLevel:     "silent",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
