package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// ProjectFilter narrows project listings
type ProjectFilter struct {
	Status   *models.ProjectStatus
	MemberID *uint
	GrantID  *uint
}

func (f ProjectFilter) scopes() []Scope {
	return []Scope{
		eq("status", f.Status),
		inJoin("project_members", "project_id", "member_id", f.MemberID),
		inJoin("project_grants", "project_id", "grant_id", f.GrantID),
	}
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	Repository[models.Project]
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{newRepository[models.Project](db, "project", "title", "description")}
}

// List retrieves projects matching the filter, newest first
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter, opts *models.ListOptions) ([]models.Project, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// CountWhere counts projects matching the filter
func (r *ProjectRepository) CountWhere(ctx context.Context, f ProjectFilter) (int64, error) {
	return r.Count(ctx, f.scopes()...)
}

// Members returns the members of a project
func (r *ProjectRepository) Members(ctx context.Context, p *models.Project) ([]models.Member, error) {
	var out []models.Member
	return out, r.related(ctx, p, "Members", &out)
}

// Grants returns the grants funding a project
func (r *ProjectRepository) Grants(ctx context.Context, p *models.Project) ([]models.Grant, error) {
	var out []models.Grant
	return out, r.related(ctx, p, "Grants", &out)
}

// Publications returns the publications of a project
func (r *ProjectRepository) Publications(ctx context.Context, p *models.Project) ([]models.Publication, error) {
	var out []models.Publication
	return out, r.related(ctx, p, "Publications", &out)
}

// Protocols returns the protocols used by a project
func (r *ProjectRepository) Protocols(ctx context.Context, p *models.Project) ([]models.Protocol, error) {
	var out []models.Protocol
	return out, r.related(ctx, p, "Protocols", &out)
}

// Collaborators returns the external collaborators on a project
func (r *ProjectRepository) Collaborators(ctx context.Context, p *models.Project) ([]models.Collaborator, error) {
	var out []models.Collaborator
	return out, r.related(ctx, p, "Collaborators", &out)
}

// ReplaceMembers sets the project's members to exactly memberIDs
func (r *ProjectRepository) ReplaceMembers(ctx context.Context, p *models.Project, memberIDs []uint) error {
	return r.replaceLinks(ctx, projectMembers, p.ID, memberIDs)
}

// ReplaceGrants sets the project's grants to exactly grantIDs
func (r *ProjectRepository) ReplaceGrants(ctx context.Context, p *models.Project, grantIDs []uint) error {
	return r.replaceLinks(ctx, projectGrants, p.ID, grantIDs)
}

// AddMember links a member to a project
func (r *ProjectRepository) AddMember(ctx context.Context, p *models.Project, memberID uint) error {
	return r.addLink(ctx, projectMembers, p.ID, memberID)
}

// RemoveMember unlinks a member from a project
func (r *ProjectRepository) RemoveMember(ctx context.Context, p *models.Project, memberID uint) error {
	return r.removeLink(ctx, projectMembers, p.ID, memberID)
}

// LinkGrant links a grant to a project
func (r *ProjectRepository) LinkGrant(ctx context.Context, p *models.Project, grantID uint) error {
	return r.addLink(ctx, projectGrants, p.ID, grantID)
}

// UnlinkGrant unlinks a grant from a project
func (r *ProjectRepository) UnlinkGrant(ctx context.Context, p *models.Project, grantID uint) error {
	return r.removeLink(ctx, projectGrants, p.ID, grantID)
}

// Delete removes a project. Records pointing at it keep existing with their
// project cleared; released equipment becomes available again.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, p *models.Project) error {
		err := tx.Model(&models.Equipment{}).Where("project_id = ?", id).Updates(map[string]interface{}{
			"project_id": nil,
			"status":     models.EquipmentStatusAvailable,
		}).Error
		if err != nil {
			return err
		}
		dependents := []interface{}{
			&models.Expense{}, &models.Booking{}, &models.Document{}, &models.Event{}, &models.NoteTask{},
		}
		for _, dependent := range dependents {
			if err := detach(tx, dependent, "project_id", id); err != nil {
				return err
			}
		}
		return clearAssociations(tx, p, "Members", "Grants", "Publications", "Protocols", "Collaborators")
	})
}
