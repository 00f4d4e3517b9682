// Package config loads the server configuration from the environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the complete server configuration
type Config struct {
	Environment string `env:"LABTRACK_ENV" envDefault:"dev"`

	Server    ServerConfig
	DB        DBConfig
	Log       LogConfig
	Auth      AuthConfig
	Blob      BlobConfig
	Telemetry TelemetryConfig
}

// ServerConfig configures the HTTP listener and GraphQL endpoint
type ServerConfig struct {
	Port          string   `env:"PORT" envDefault:"8080"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	MaxQueryDepth int      `env:"GRAPHQL_MAX_DEPTH" envDefault:"12"`
	BodyLimitMB   int      `env:"BODY_LIMIT_MB" envDefault:"32"`
}

// DBConfig configures the PostgreSQL connection
type DBConfig struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name        string `env:"DB_NAME" envDefault:"labtrack"`
	SSLMode     string `env:"DB_SSL_MODE" envDefault:"disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	LogLevel    string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

// URL returns the connection string in URL form, as used by golang-migrate
func (c DBConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AuthConfig configures token verification and user bootstrap
type AuthConfig struct {
	Required      bool          `env:"AUTH_REQUIRED" envDefault:"true"`
	JWTSecret     string        `env:"AUTH_JWT_SECRET"`
	TokenTTL      time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
	Issuer        string        `env:"AUTH_ISSUER" envDefault:"labtrack"`
	JWKSURL       string        `env:"AUTH_JWKS_URL"`
	AllowSignup   bool          `env:"AUTH_ALLOW_SIGNUP" envDefault:"true"`
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
}

// BlobConfig selects and configures the document content store
type BlobConfig struct {
	Driver      string        `env:"BLOB_DRIVER" envDefault:"fs"`
	FSRoot      string        `env:"BLOB_FS_ROOT" envDefault:"./data/blobs"`
	S3Bucket    string        `env:"BLOB_S3_BUCKET"`
	S3Region    string        `env:"BLOB_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string        `env:"BLOB_S3_ENDPOINT"`
	S3PathStyle bool          `env:"BLOB_S3_PATH_STYLE" envDefault:"false"`
	PresignTTL  time.Duration `env:"BLOB_PRESIGN_TTL" envDefault:"15m"`
}

// TelemetryConfig configures metrics and tracing
type TelemetryConfig struct {
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	OTLPEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"labtrack"`
}

// Load reads an optional .env file and parses the environment into a Config
func Load(envFiles ...string) (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	if c.Auth.Required && c.Auth.JWTSecret == "" && c.Auth.JWKSURL == "" {
		return errors.New("AUTH_REQUIRED needs AUTH_JWT_SECRET or AUTH_JWKS_URL")
	}
	switch c.Blob.Driver {
	case "fs", "memory":
	case "s3":
		if c.Blob.S3Bucket == "" {
			return errors.New("BLOB_S3_BUCKET required for the s3 blob driver")
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.Blob.Driver)
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "prod"
}

// LoadDB reads only the database section, for tools that need nothing else
func LoadDB(envFiles ...string) (*DBConfig, error) {
	_ = godotenv.Load(envFiles...)

	var cfg DBConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
