// Package seed loads YAML fixtures into the database through the services,
// so seeded data obeys the same rules as data entered through the API.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/logger"
	"github.com/labtrack/labtrack/internal/services"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Default returns the fixtures shipped with the binary
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Parse decodes a fixture document
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// LoadFile reads fixtures from path
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

// joinTables are emptied by Reset before the entity tables
var joinTables = []string{
	"project_members",
	"project_grants",
	"event_attendees",
	"publication_authors",
	"publication_collaborators",
	"publication_projects",
	"collaborator_projects",
	"protocol_projects",
	"protocol_equipment",
}

// Reset deletes all lab data. User accounts are kept but lose their member link.
func Reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range joinTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("reset %s: %w", table, err)
			}
		}
		unlink := tx.Model(&models.User{}).Where("member_id IS NOT NULL").Update("member_id", nil)
		if unlink.Error != nil {
			return fmt.Errorf("reset users: %w", unlink.Error)
		}
		all := models.All()
		for i := len(all) - 1; i >= 0; i-- {
			if _, ok := all[i].(*models.User); ok {
				continue
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(all[i]).Error; err != nil {
				return fmt.Errorf("reset %T: %w", all[i], err)
			}
		}
		return nil
	})
}

// Counts reports how many rows of each kind were created
type Counts map[string]int

// Load creates every fixture in a single transaction
func Load(ctx context.Context, db *gorm.DB, f *Fixtures) (Counts, error) {
	counts := Counts{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l := &loader{
			ctx:    ctx,
			svc:    services.New(tx, services.Options{}),
			counts: counts,
			keys:   map[string]refs{},
		}
		return l.load(f)
	})
	if err != nil {
		return nil, err
	}
	logger.InfoWithFields("fixtures loaded", map[string]interface{}{"counts": counts})
	return counts, nil
}
