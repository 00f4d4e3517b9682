package repos

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// MemberFilter narrows member listings
type MemberFilter struct {
	Role      *models.MemberRole
	Status    *models.MemberStatus
	ProjectID *uint
}

func (f MemberFilter) scopes() []Scope {
	return []Scope{
		eq("role", f.Role),
		eq("status", f.Status),
		inJoin("project_members", "member_id", "project_id", f.ProjectID),
	}
}

// MemberRepository handles database operations for members
type MemberRepository struct {
	Repository[models.Member]
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{newRepository[models.Member](db, "member", "name", "email")}
}

// List retrieves members matching the filter, newest first
func (r *MemberRepository) List(ctx context.Context, f MemberFilter, opts *models.ListOptions) ([]models.Member, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// CountWhere counts members matching the filter
func (r *MemberRepository) CountWhere(ctx context.Context, f MemberFilter) (int64, error) {
	return r.Count(ctx, f.scopes()...)
}

// EmailTaken reports whether another member already uses email
func (r *MemberRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(email), excludeID).
		Count(&count).Error
	return count > 0, err
}

// Projects returns the projects a member belongs to
func (r *MemberRepository) Projects(ctx context.Context, m *models.Member) ([]models.Project, error) {
	var out []models.Project
	return out, r.related(ctx, m, "Projects", &out)
}

// Publications returns the publications a member authored
func (r *MemberRepository) Publications(ctx context.Context, m *models.Member) ([]models.Publication, error) {
	var out []models.Publication
	return out, r.related(ctx, m, "Publications", &out)
}

// Events returns the events a member attends
func (r *MemberRepository) Events(ctx context.Context, m *models.Member) ([]models.Event, error) {
	var out []models.Event
	return out, r.related(ctx, m, "Events", &out)
}

// ReplaceProjects sets the member's projects to exactly projectIDs
func (r *MemberRepository) ReplaceProjects(ctx context.Context, m *models.Member, projectIDs []uint) error {
	return r.replaceLinks(ctx, projectMembers.reverse(), m.ID, projectIDs)
}

// Delete removes a member. Bookings, academic records and notes are deleted,
// equipment is released and every other reference is cleared.
func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, m *models.Member) error {
		for _, dependent := range []interface{}{&models.Booking{}, &models.AcademicInfo{}, &models.NoteTask{}} {
			if err := tx.Where("member_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		// equipment is never assigned to a member and a project at once
		err := tx.Model(&models.Equipment{}).Where("member_id = ?", id).Updates(map[string]interface{}{
			"member_id": nil,
			"status":    models.EquipmentStatusAvailable,
		}).Error
		if err != nil {
			return err
		}
		if err := detach(tx, &models.Document{}, "member_id", id); err != nil {
			return err
		}
		if err := detach(tx, &models.Protocol{}, "author_id", id); err != nil {
			return err
		}
		if err := detach(tx, &models.User{}, "member_id", id); err != nil {
			return err
		}
		return clearAssociations(tx, m, "Projects", "Publications", "Events")
	})
}
