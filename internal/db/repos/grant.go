package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// GrantFilter narrows grant listings
type GrantFilter struct {
	Status    *models.GrantStatus
	ProjectID *uint
}

func (f GrantFilter) scopes() []Scope {
	return []Scope{
		eq("status", f.Status),
		inJoin("project_grants", "grant_id", "project_id", f.ProjectID),
	}
}

// GrantRepository handles database operations for grants
type GrantRepository struct {
	Repository[models.Grant]
}

// NewGrantRepository creates a new instance of GrantRepository
func NewGrantRepository(db *gorm.DB) *GrantRepository {
	return &GrantRepository{newRepository[models.Grant](db, "grant", "title", "agency", "reference_number")}
}

// List retrieves grants matching the filter, newest first
func (r *GrantRepository) List(ctx context.Context, f GrantFilter, opts *models.ListOptions) ([]models.Grant, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// CountWhere counts grants matching the filter
func (r *GrantRepository) CountWhere(ctx context.Context, f GrantFilter) (int64, error) {
	return r.Count(ctx, f.scopes()...)
}

// TotalBudget sums the budget of every grant
func (r *GrantRepository) TotalBudget(ctx context.Context) (float64, error) {
	return total(r.db.WithContext(ctx).Model(&models.Grant{}), "budget")
}

// Projects returns the projects funded by a grant
func (r *GrantRepository) Projects(ctx context.Context, g *models.Grant) ([]models.Project, error) {
	var out []models.Project
	return out, r.related(ctx, g, "Projects", &out)
}

// ReplaceProjects sets the grant's projects to exactly projectIDs
func (r *GrantRepository) ReplaceProjects(ctx context.Context, g *models.Grant, projectIDs []uint) error {
	return r.replaceLinks(ctx, projectGrants.reverse(), g.ID, projectIDs)
}

// Delete removes a grant and unlinks its expenses and projects
func (r *GrantRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, g *models.Grant) error {
		if err := detach(tx, &models.Expense{}, "grant_id", id); err != nil {
			return err
		}
		return clearAssociations(tx, g, "Projects")
	})
}
