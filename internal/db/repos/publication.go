package repos

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// PublicationFilter narrows publication listings
type PublicationFilter struct {
	Status    *models.PublicationStatus
	AuthorID  *uint
	ProjectID *uint
}

func (f PublicationFilter) scopes() []Scope {
	return []Scope{
		eq("status", f.Status),
		inJoin("publication_authors", "publication_id", "member_id", f.AuthorID),
		inJoin("publication_projects", "publication_id", "project_id", f.ProjectID),
	}
}

// PublicationRepository handles database operations for publications
type PublicationRepository struct {
	Repository[models.Publication]
}

// NewPublicationRepository creates a new instance of PublicationRepository
func NewPublicationRepository(db *gorm.DB) *PublicationRepository {
	return &PublicationRepository{newRepository[models.Publication](db, "publication", "title", "venue", "doi")}
}

// List retrieves publications matching the filter, newest first
func (r *PublicationRepository) List(ctx context.Context, f PublicationFilter, opts *models.ListOptions) ([]models.Publication, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// CountWhere counts publications matching the filter
func (r *PublicationRepository) CountWhere(ctx context.Context, f PublicationFilter) (int64, error) {
	return r.Count(ctx, f.scopes()...)
}

// DOITaken reports whether another publication already uses the DOI
func (r *PublicationRepository) DOITaken(ctx context.Context, doi string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Publication{}).
		Where("LOWER(doi) = ? AND id <> ?", strings.ToLower(doi), excludeID).
		Count(&count).Error
	return count > 0, err
}

// Authors returns the member authors of a publication
func (r *PublicationRepository) Authors(ctx context.Context, p *models.Publication) ([]models.Member, error) {
	var out []models.Member
	return out, r.related(ctx, p, "Authors", &out)
}

// Collaborators returns the external co-authors of a publication
func (r *PublicationRepository) Collaborators(ctx context.Context, p *models.Publication) ([]models.Collaborator, error) {
	var out []models.Collaborator
	return out, r.related(ctx, p, "Collaborators", &out)
}

// Projects returns the projects a publication came out of
func (r *PublicationRepository) Projects(ctx context.Context, p *models.Publication) ([]models.Project, error) {
	var out []models.Project
	return out, r.related(ctx, p, "Projects", &out)
}

// ReplaceAuthors sets the publication's authors to exactly memberIDs
func (r *PublicationRepository) ReplaceAuthors(ctx context.Context, p *models.Publication, memberIDs []uint) error {
	return r.replaceLinks(ctx, publicationAuthors, p.ID, memberIDs)
}

// ReplaceCollaborators sets the publication's collaborators to exactly collaboratorIDs
func (r *PublicationRepository) ReplaceCollaborators(ctx context.Context, p *models.Publication, collaboratorIDs []uint) error {
	return r.replaceLinks(ctx, publicationCollaborators, p.ID, collaboratorIDs)
}

// ReplaceProjects sets the publication's projects to exactly projectIDs
func (r *PublicationRepository) ReplaceProjects(ctx context.Context, p *models.Publication, projectIDs []uint) error {
	return r.replaceLinks(ctx, publicationProjects, p.ID, projectIDs)
}

// Delete removes a publication and its author, collaborator and project links
func (r *PublicationRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, p *models.Publication) error {
		return clearAssociations(tx, p, "Authors", "Collaborators", "Projects")
	})
}
