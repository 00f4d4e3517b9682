// Package db provides database connectivity and operations
package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/logger"
)

// Database configuration constants
const (
	// DefaultHost is the default database host
	DefaultHost = "localhost"
	// DefaultPort is the default database port
	DefaultPort = 5432
	// DefaultUser is the default database user
	DefaultUser = "postgres"
	// DefaultPassword is the default database password
	DefaultPassword = "postgres"
	// DefaultDBName is the default database name
	DefaultDBName = "labtrack"
	// DefaultSSLMode is the default sslmode
	DefaultSSLMode = "disable"
)

// Options represents database connection configuration options
type Options struct {
	Host        string
	User        string
	Password    string
	DBName      string
	Port        int
	SSLMode     string
	LogLevel    gormlogger.LogLevel
	AutoMigrate bool
	MaxOpen     int
	MaxIdle     int
}

// New creates a new database connection with the given options
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		opts.Host, opts.User, opts.Password, opts.DBName, opts.Port, opts.SSLMode)

	pgxConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	sqlDB := stdlib.OpenDB(*pgxConfig)
	sqlDB.SetMaxOpenConns(opts.MaxOpen)
	sqlDB.SetMaxIdleConns(opts.MaxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), Config(opts.LogLevel))
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if opts.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Config returns the gorm configuration shared by every dialect. Errors are
// translated so duplicate keys surface as gorm.ErrDuplicatedKey regardless of driver.
func Config(level gormlogger.LogLevel) *gorm.Config {
	if level == 0 {
		level = gormlogger.Warn
	}
	return &gorm.Config{
		Logger: gormlogger.New(
			logger.Logger(),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
			},
		),
		TranslateError: true,
	}
}

// ParseLogLevel maps "silent", "error", "warn" and "info" to a gorm log level
func ParseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// Migrate creates or updates every table from the models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// IsDuplicateKeyError checks if the given error is a unique constraint violation
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func setDefaults(opts Options) Options {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.User == "" {
		opts.User = DefaultUser
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.DBName == "" {
		opts.DBName = DefaultDBName
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.SSLMode == "" {
		opts.SSLMode = DefaultSSLMode
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = gormlogger.Warn
	}
	if opts.MaxOpen == 0 {
		opts.MaxOpen = 20
	}
	if opts.MaxIdle == 0 {
		opts.MaxIdle = 5
	}
	return opts
}
