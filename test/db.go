package test

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/labtrack/labtrack/internal/db"
)

// NewFileBasedTestDB creates a new file-based SQLite database for testing.
// It returns the database connection and the path to the temporary directory.
func NewFileBasedTestDB() (*gorm.DB, string, error) {
	tmpDir, err := os.MkdirTemp("", "labtrack_test")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	dbPath := filepath.Join(tmpDir, "labtrack_test.db")
	cfg := db.Config(gormlogger.Silent)
	cfg.DisableForeignKeyConstraintWhenMigrating = true
	conn, err := gorm.Open(sqlite.Open(dbPath), cfg)
	if err != nil {
		// Try to clean up the temporary directory, but don't fail if cleanup fails
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			fmt.Printf("Warning: failed to remove temporary directory after database error: %v\n", rmErr)
		}
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	return conn, tmpDir, nil
}

// CleanupTestDB closes the database connection and removes the temporary directory.
func CleanupTestDB(conn *gorm.DB, tmpDir string) {
	if err := db.Close(conn); err != nil {
		fmt.Printf("Error closing database connection: %v\n", err)
	}
	if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
		fmt.Printf("Error removing temporary directory: %v\n", rmErr)
	}
}

// SetupTestDB creates a fresh migrated database for the suite
func SetupTestDB(s *Suite) {
	conn, tmpDir, err := NewFileBasedTestDB()
	s.Require().NoError(err, "Failed to create file-based database")
	s.DB = conn

	s.Require().NoError(db.Migrate(s.DB), "Failed to run database migrations")

	oldCleanup := s.cleanup
	s.cleanup = func() {
		if oldCleanup != nil {
			oldCleanup()
		}
		CleanupTestDB(conn, tmpDir)
	}
}
