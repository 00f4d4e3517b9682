// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go              # Run all pending migrations
// go run cmd/migrate/main.go -down        # Rollback all migrations
// go run cmd/migrate/main.go -steps 1     # Run one migration
// go run cmd/migrate/main.go -steps -1    # Rollback one migration
// go run cmd/migrate/main.go -force 1     # Force version 1
package main

import (
	"flag"
	"os"
	"time"

	"github.com/labtrack/labtrack/internal/config"
	"github.com/labtrack/labtrack/internal/db/migrations"
	"github.com/labtrack/labtrack/internal/logger"
)

func main() {
	var (
		dbURLFlag = flag.String("db", "", "Database URL (optional, defaults to env vars)")
		down      = flag.Bool("down", false, "Roll back migrations")
		steps     = flag.Int("steps", 0, "Number of migrations to apply (up or down)")
		force     = flag.Int("force", -1, "Force a specific version")
		retries   = flag.Int("retries", 5, "Number of connection retries")
		retryWait = flag.Duration("retry-wait", 3*time.Second, "Wait time between retries")
	)
	flag.Parse()

	// Build database URL from env vars unless given on the command line
	dbURL := *dbURLFlag
	if dbURL == "" {
		cfg, err := config.LoadDB()
		if err != nil {
			logger.Fatalf("Failed to load configuration: %v", err)
		}
		dbURL = cfg.URL()
	}

	service, err := migrations.NewMigrationService(migrations.Config{
		DatabaseURL:   dbURL,
		RetryAttempts: *retries,
		RetryDelay:    *retryWait,
	})
	if err != nil {
		logger.Fatalf("Failed to create migration service: %v", err)
	}
	defer func() {
		if err := service.Close(); err != nil {
			logger.Warnf("Failed to close migration service: %v", err)
		}
	}()

	if *force >= 0 {
		if err := service.Force(*force); err != nil {
			logger.Fatalf("Failed to force version %d: %v", *force, err)
		}
		logger.Infof("Successfully forced version to %d", *force)
		os.Exit(0)
	}

	if *steps != 0 {
		if err := service.Steps(*steps); err != nil {
			logger.Fatalf("Failed to apply %d steps: %v", *steps, err)
		}
		logger.Infof("Successfully applied %d steps", *steps)
		os.Exit(0)
	}

	if *down {
		if err := service.Down(); err != nil {
			logger.Fatalf("Migration rollback failed: %v", err)
		}
	} else {
		if err := service.Up(); err != nil {
			logger.Fatalf("Migration failed: %v", err)
		}
	}

	version, dirty, err := service.Version()
	if err != nil {
		logger.Warnf("Could not get final version: %v", err)
	} else {
		logger.Infof("Current migration version: %d (dirty: %v)", version, dirty)
	}
}
