package test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/metrics"
	"github.com/labtrack/labtrack/internal/services"
	"github.com/labtrack/labtrack/pkg/api/v1/client"
)

// Admin credentials created by LoginAsAdmin
const (
	AdminEmail    = "admin@lab.example"
	AdminPassword = "admin-password-123"
)

// Suite encapsulates all components needed for integration testing.
// It provides a complete test setup with:
//   - File-based SQLite database
//   - Real API server
//   - Real API client
//   - In-memory blob store
type Suite struct {
	t *testing.T // The testing.T instance for this suite

	// Server components
	App    *fiber.App
	Server *httptest.Server

	// Client components
	APIClient client.Client

	// Backing components, for arranging state and inspecting results
	DB       *gorm.DB
	Services *services.Services
	Blob     *blob.MemoryStore
	Issuer   *auth.Issuer
	Metrics  *metrics.Metrics

	authRequired bool

	// Context management
	ctx        context.Context
	cancelFunc context.CancelFunc

	// Cleanup function
	cleanup     func()
	cleanupOnce sync.Once
}

// NewSuite creates a new test suite with the given options.
// The suite must be cleaned up after use by calling Cleanup.
func NewSuite(t *testing.T, opts ...Option) *Suite {
	t.Helper()

	// Create suite with default timeout
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTestTimeout)

	s := &Suite{
		t:          t,
		ctx:        ctx,
		cancelFunc: cancel,
	}
	s.cleanup = func() {
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	SetupTestDB(s)
	SetupServer(s)

	return s
}

// Cleanup tears down the test suite, releasing all resources.
// This should be deferred immediately after creating the suite.
func (s *Suite) Cleanup() {
	s.cleanupOnce.Do(func() {
		if s.cleanup != nil {
			s.cleanup()
		}
	})
}

// T returns the testing.T instance for this suite
func (s *Suite) T() *testing.T {
	return s.t
}

// Context returns the suite's context, which is automatically
// canceled when the suite is cleaned up.
func (s *Suite) Context() context.Context {
	return s.ctx
}

// Require returns a require.Assertions instance for this suite.
// This is a convenience method to avoid passing t around.
func (s *Suite) Require() *require.Assertions {
	return require.New(s.t)
}

// LoginAsAdmin creates the admin account if needed and authenticates the
// API client with it.
func (s *Suite) LoginAsAdmin() *client.AuthPayload {
	s.Require().NoError(s.Services.Users.EnsureAdmin(s.ctx, AdminEmail, AdminPassword))
	payload, err := s.APIClient.Login(s.ctx, AdminEmail, AdminPassword)
	s.Require().NoError(err, "Failed to log in as admin")
	s.APIClient.SetToken(payload.Token)
	return payload
}

// Retry retries a function until it succeeds or the number of retries is reached.
func (s *Suite) Retry(fn func() error, retries int, interval time.Duration) (err error) {
	for i := 0; i < retries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		time.Sleep(interval)
	}
	return
}
