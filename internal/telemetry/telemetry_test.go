package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labtrack/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{ServiceName: "labtrack"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupEnabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{
		OTLPEndpoint: "http://localhost:4318",
		ServiceName:  "labtrack-test",
	})
	require.NoError(t, err)
	// nothing was recorded, so shutdown does not need the collector
	assert.NoError(t, shutdown(context.Background()))
}
