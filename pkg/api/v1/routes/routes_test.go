package routes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLBuilders(t *testing.T) {
	assert.Equal(t, "/health", HealthCheckURL())
	assert.Equal(t, "/metrics", MetricsURL())
	assert.Equal(t, "/api/v1/graphql", GraphQLURL())
	assert.Equal(t, "/api/v1/documents/42/content", DocumentContentURL(42))
	assert.Equal(t, GetRoute(GetDocumentContent), GetRoute(PutDocumentContent))
}

func TestBuildURL(t *testing.T) {
	assert.Empty(t, BuildURL("NoSuchRoute", nil, nil))
	assert.Equal(t, "/api/v1/graphql?debug=1", BuildURL(GraphQL, nil, url.Values{"debug": {"1"}}))
}
