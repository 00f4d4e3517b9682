package test

import (
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/labtrack/labtrack/internal/app"
	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/config"
	"github.com/labtrack/labtrack/internal/metrics"
	"github.com/labtrack/labtrack/internal/services"
	"github.com/labtrack/labtrack/pkg/api/v1/client"
	"github.com/labtrack/labtrack/pkg/api/v1/routes"
)

const (
	// testClientTimeout is the timeout for test API client requests
	testClientTimeout = 5 * time.Second
	testJWTSecret     = "integration-test-secret"
)

// SetupServer configures the test suite with a real API server
func SetupServer(s *Suite) {
	s.Blob = blob.NewMemoryStore()
	s.Issuer = auth.NewIssuer(testJWTSecret, "labtrack", time.Hour)
	s.Metrics = metrics.New()
	s.Services = services.New(s.DB, services.Options{
		Blob:        s.Blob,
		Issuer:      s.Issuer,
		AllowSignup: true,
		ContentURL:  routes.DocumentContentURL,
	})

	fiberApp, err := app.NewApp(app.Deps{
		DB:       s.DB,
		Services: s.Services,
		Verifier: s.Issuer,
		Metrics:  s.Metrics,
		Server: config.ServerConfig{
			CORSOrigins:   []string{"http://localhost:3000"},
			MaxQueryDepth: 12,
			BodyLimitMB:   4,
		},
		RequireAuth: s.authRequired,
	})
	s.Require().NoError(err, "Failed to build application")
	s.App = fiberApp

	// Create test server using adaptor to convert Fiber app to http.Handler
	s.Server = httptest.NewServer(adaptor.FiberApp(s.App))

	apiClient, err := client.NewClient(&client.Options{
		BaseURL: s.Server.URL,
		Timeout: testClientTimeout,
	})
	s.Require().NoError(err, "Failed to create API client")
	s.APIClient = apiClient

	oldCleanup := s.cleanup
	s.cleanup = func() {
		if s.Server != nil {
			s.Server.Close()
		}
		if oldCleanup != nil {
			oldCleanup()
		}
	}
}
