// Package testdb opens a migrated in-memory SQLite database for tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"tour-booking-api/entity"
)

var counter atomic.Int64

// New returns a fresh database per call. The connection is closed when t finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", counter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: entity.NamingStrategy,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(entity.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	conn, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })
	return db
}
