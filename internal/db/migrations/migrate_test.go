package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labtrack/internal/db/models"
)

func TestEmbeddedFilesArePaired(t *testing.T) {
	names, err := fs.Glob(Files(), "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestInitCreatesEveryTable(t *testing.T) {
	up, err := fs.ReadFile(Files(), "000001_init.up.sql")
	require.NoError(t, err)
	down, err := fs.ReadFile(Files(), "000001_init.down.sql")
	require.NoError(t, err)

	tables := []string{
		"project_members", "project_grants", "event_attendees",
		"publication_authors", "publication_collaborators", "publication_projects",
		"collaborator_projects", "protocol_projects", "protocol_equipment",
	}
	for _, m := range models.All() {
		if tabler, ok := m.(interface{ TableName() string }); ok {
			tables = append(tables, tabler.TableName())
		}
	}
	for _, table := range tables {
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
		assert.Contains(t, string(down), "DROP TABLE IF EXISTS "+table+";", table)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.RetryAttempts)
	assert.NotZero(t, cfg.RetryDelay)
}
