package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/database"
)

// newTestDB opens an in-memory sqlite database. The pool is pinned to a
// single connection so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		DBDriver:             "sqlite",
		JWTSecretKey:         "test-secret",
		TokenTTLHours:        8,
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "changeme123",
	}
}

func strptr(s string) *string { return &s }
