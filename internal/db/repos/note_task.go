package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// NoteTaskFilter narrows note and task listings
type NoteTaskFilter struct {
	Kind      *models.NoteKind
	Priority  *models.Priority
	Completed *bool
	MemberID  *uint
	ProjectID *uint
}

func (f NoteTaskFilter) scopes() []Scope {
	return []Scope{
		eq("kind", f.Kind),
		eq("priority", f.Priority),
		eq("completed", f.Completed),
		eq("member_id", f.MemberID),
		eq("project_id", f.ProjectID),
	}
}

// NoteTaskRepository handles database operations for notes and tasks
type NoteTaskRepository struct {
	Repository[models.NoteTask]
}

// NewNoteTaskRepository creates a new instance of NoteTaskRepository
func NewNoteTaskRepository(db *gorm.DB) *NoteTaskRepository {
	return &NoteTaskRepository{newRepository[models.NoteTask](db, "note task", "title", "content")}
}

// List retrieves notes and tasks matching the filter, newest first
func (r *NoteTaskRepository) List(ctx context.Context, f NoteTaskFilter, opts *models.ListOptions) ([]models.NoteTask, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// CountWhere counts notes and tasks matching the filter
func (r *NoteTaskRepository) CountWhere(ctx context.Context, f NoteTaskFilter) (int64, error) {
	return r.Count(ctx, f.scopes()...)
}
