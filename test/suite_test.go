package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/services"
)

func TestNewSuite(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	// Basic suite checks
	assert.Same(t, t, suite.T())
	assert.NotNil(t, suite.App, "app should be initialized")
	assert.NotNil(t, suite.Server, "server should be initialized")
	assert.NotNil(t, suite.APIClient, "API client should be initialized")
	assert.NotNil(t, suite.DB, "database should be initialized")
	assert.NotNil(t, suite.Services, "services should be initialized")
	assert.NotNil(t, suite.Blob, "blob store should be initialized")
	assert.NotNil(t, suite.ctx, "context should be set")

	health, err := suite.APIClient.HealthCheck(suite.Context())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
}

func TestSuiteDatabase(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	name, email := "Grace Hopper", "grace@lab.example"
	member, err := suite.Services.Members.Create(suite.Context(), services.MemberInput{
		Name:  &name,
		Email: &email,
	})
	require.NoError(t, err)
	assert.NotZero(t, member.ID)

	var stored models.Member
	require.NoError(t, suite.DB.First(&stored, member.ID).Error)
	assert.Equal(t, email, stored.Email)
}

func TestSuiteCleanup(t *testing.T) {
	t.Run("multiple cleanup calls", func(t *testing.T) {
		suite := NewSuite(t)

		// First cleanup should work
		suite.Cleanup()

		// Second cleanup should not panic
		suite.Cleanup()
	})

	t.Run("database cleanup", func(t *testing.T) {
		suite := NewSuite(t)

		sqlDB, err := suite.DB.DB()
		require.NoError(t, err)

		suite.Cleanup()

		err = sqlDB.Ping()
		assert.Error(t, err, "database connection should be closed")
	})

	t.Run("cleanup funcs run", func(t *testing.T) {
		called := false
		suite := NewSuite(t, WithCleanupFunc(func() { called = true }))
		suite.Cleanup()
		assert.True(t, called)
	})
}

func TestWithTimeout(t *testing.T) {
	suite := NewSuite(t, WithTimeout(time.Minute))
	defer suite.Cleanup()

	deadline, ok := suite.Context().Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestLoginAsAdmin(t *testing.T) {
	suite := NewSuite(t, WithAuthRequired(true))
	defer suite.Cleanup()

	payload := suite.LoginAsAdmin()
	assert.Equal(t, "ADMIN", payload.User.Role)
	assert.NotEmpty(t, payload.Token)
}
