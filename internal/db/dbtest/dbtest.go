// Package dbtest opens throwaway sqlite databases for tests
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labtrack/labtrack/internal/db"
)

// Open creates a private in-memory database with every table migrated.
// The connection is closed when the test finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg := db.Config(logger.Silent)
	cfg.DisableForeignKeyConstraintWhenMigrating = true

	conn, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err, "Failed to create in-memory database")
	require.NoError(t, db.Migrate(conn), "Failed to run database migrations")

	t.Cleanup(func() {
		_ = db.Close(conn)
	})
	return conn
}
