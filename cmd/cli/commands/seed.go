package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labtrack/labtrack/internal/config"
	"github.com/labtrack/labtrack/internal/db"
	"github.com/labtrack/labtrack/internal/seed"
)

// Flag names
const (
	flagFile  = "file"
	flagReset = "reset"
)

func init() {
	seedCmd.Flags().StringP(flagFile, "f", "", "Fixture file (defaults to the built-in demo lab)")
	seedCmd.Flags().Bool(flagReset, false, "Delete existing lab data first; user accounts are kept")
}

// seedCmd talks to the database directly, configured by the same DB_*
// environment variables as the server.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture data into the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, err := cmd.Flags().GetString(flagFile)
		if err != nil {
			return fmt.Errorf("error getting file flag: %w", err)
		}
		reset, err := cmd.Flags().GetBool(flagReset)
		if err != nil {
			return fmt.Errorf("error getting reset flag: %w", err)
		}

		fixtures, err := loadFixtures(file)
		if err != nil {
			return err
		}

		dbCfg, err := config.LoadDB()
		if err != nil {
			return fmt.Errorf("error loading database configuration: %w", err)
		}
		conn, err := db.New(db.Options{
			Host:        dbCfg.Host,
			User:        dbCfg.User,
			Password:    dbCfg.Password,
			DBName:      dbCfg.Name,
			Port:        dbCfg.Port,
			SSLMode:     dbCfg.SSLMode,
			LogLevel:    db.ParseLogLevel(dbCfg.LogLevel),
			AutoMigrate: true,
		})
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		defer func() { _ = db.Close(conn) }()

		if reset {
			if err := seed.Reset(cmd.Context(), conn); err != nil {
				return fmt.Errorf("error resetting database: %w", err)
			}
		}
		counts, err := seed.Load(cmd.Context(), conn, fixtures)
		if err != nil {
			return fmt.Errorf("error seeding database: %w", err)
		}
		return printJSON(cmd, counts)
	},
}

func loadFixtures(file string) (*seed.Fixtures, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.LoadFile(file)
}

// GetSeedCmd returns the seed command
func GetSeedCmd() *cobra.Command {
	return seedCmd
}
