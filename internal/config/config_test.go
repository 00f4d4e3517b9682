package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "fs", cfg.Blob.Driver)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "false")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://lab.example.org,https://admin.example.org")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("BLOB_DRIVER", "memory")
	t.Setenv("LABTRACK_ENV", "prod")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://lab.example.org", "https://admin.example.org"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres://postgres:postgres@db:6543/labtrack?sslmode=disable", cfg.DB.URL())
	assert.Equal(t, "memory", cfg.Blob.Driver)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{Required: true}, Blob: BlobConfig{Driver: "fs"}}
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWKSURL = "https://idp.example.org/.well-known/jwks.json"
	assert.NoError(t, cfg.Validate())

	cfg.Blob.Driver = "s3"
	assert.Error(t, cfg.Validate())
	cfg.Blob.S3Bucket = "lab-docs"
	assert.NoError(t, cfg.Validate())

	cfg.Blob.Driver = "ftp"
	assert.Error(t, cfg.Validate())
}

func TestLoadDBIgnoresAuth(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("DB_NAME", "lab_test")

	cfg, err := LoadDB("testdata/does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, "lab_test", cfg.Name)
}
