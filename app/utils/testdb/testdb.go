// Package testdb opens throwaway databases for package tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/configs"
	"github.com/Rakhulsr/go-marketplace/app/models/migrations"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open returns a migrated in-memory SQLite database private to t. It holds a
// single connection, so code under test must use the transaction handle while
// a transaction is open.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg := configs.GormConfig(false)
	cfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

// Logger returns a logger that discards everything.
func Logger() *zap.Logger {
	return zap.NewNop()
}
