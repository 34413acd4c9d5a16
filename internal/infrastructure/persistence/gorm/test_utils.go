package gorm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// NewTestDB creates a migrated in-memory SQLite database for testing
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	log := logger.NewTestLogger(t)

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.NewMigrator(db, log, Migrations()...).Migrate())
	return db
}
