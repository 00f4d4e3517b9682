package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// CollaboratorFilter narrows collaborator listings
type CollaboratorFilter struct {
	ProjectID     *uint
	PublicationID *uint
}

func (f CollaboratorFilter) scopes() []Scope {
	return []Scope{
		inJoin("collaborator_projects", "collaborator_id", "project_id", f.ProjectID),
		inJoin("publication_collaborators", "collaborator_id", "publication_id", f.PublicationID),
	}
}

// CollaboratorRepository handles database operations for collaborators
type CollaboratorRepository struct {
	Repository[models.Collaborator]
}

// NewCollaboratorRepository creates a new instance of CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{newRepository[models.Collaborator](db, "collaborator", "name", "email", "institution")}
}

// List retrieves collaborators matching the filter, newest first
func (r *CollaboratorRepository) List(ctx context.Context, f CollaboratorFilter, opts *models.ListOptions) ([]models.Collaborator, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// Projects returns the projects a collaborator works on
func (r *CollaboratorRepository) Projects(ctx context.Context, c *models.Collaborator) ([]models.Project, error) {
	var out []models.Project
	return out, r.related(ctx, c, "Projects", &out)
}

// Publications returns the publications a collaborator co-authored
func (r *CollaboratorRepository) Publications(ctx context.Context, c *models.Collaborator) ([]models.Publication, error) {
	var out []models.Publication
	return out, r.related(ctx, c, "Publications", &out)
}

// ReplaceProjects sets the collaborator's projects to exactly projectIDs
func (r *CollaboratorRepository) ReplaceProjects(ctx context.Context, c *models.Collaborator, projectIDs []uint) error {
	return r.replaceLinks(ctx, collaboratorProjects, c.ID, projectIDs)
}

// Delete removes a collaborator and its project and publication links
func (r *CollaboratorRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, c *models.Collaborator) error {
		return clearAssociations(tx, c, "Projects", "Publications")
	})
}
