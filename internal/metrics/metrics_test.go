package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/metrics", m.Handler())

	for _, path := range []string{"/health", "/health", "/missing"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/health", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/missing", "GET", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "labtrack_http_requests_total")
}

func TestGraphQLCounters(t *testing.T) {
	m := New()
	m.ObserveField("query", "members")
	m.ObserveField("query", "members")
	m.ObserveError("NOT_FOUND")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.graphql.WithLabelValues("query", "members")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gqlErrors.WithLabelValues("NOT_FOUND")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveField("query", "x") })
}
