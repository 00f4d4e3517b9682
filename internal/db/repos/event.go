package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// EventFilter narrows event listings
type EventFilter struct {
	Type      *models.EventType
	ProjectID *uint
	MemberID  *uint
	From      *time.Time
	To        *time.Time
}

func (f EventFilter) scopes() []Scope {
	return []Scope{
		eq("type", f.Type),
		eq("project_id", f.ProjectID),
		inJoin("event_attendees", "event_id", "member_id", f.MemberID),
		window("start_time", "end_time", f.From, f.To),
	}
}

// EventRepository handles database operations for events
type EventRepository struct {
	Repository[models.Event]
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{newRepository[models.Event](db, "event", "title", "location")}
}

// List retrieves events matching the filter, newest first
func (r *EventRepository) List(ctx context.Context, f EventFilter, opts *models.ListOptions) ([]models.Event, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// Upcoming returns events starting at or after now, soonest first
func (r *EventRepository) Upcoming(ctx context.Context, now time.Time, limit int) ([]models.Event, error) {
	var out []models.Event
	err := r.db.WithContext(ctx).
		Where("start_time >= ?", now.UTC()).
		Order("start_time ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// Attendees returns the members attending an event
func (r *EventRepository) Attendees(ctx context.Context, e *models.Event) ([]models.Member, error) {
	var out []models.Member
	return out, r.related(ctx, e, "Attendees", &out)
}

// ReplaceAttendees sets the event's attendees to exactly memberIDs
func (r *EventRepository) ReplaceAttendees(ctx context.Context, e *models.Event, memberIDs []uint) error {
	return r.replaceLinks(ctx, eventAttendees, e.ID, memberIDs)
}

// AddAttendee adds a member to an event
func (r *EventRepository) AddAttendee(ctx context.Context, e *models.Event, memberID uint) error {
	return r.addLink(ctx, eventAttendees, e.ID, memberID)
}

// RemoveAttendee removes a member from an event
func (r *EventRepository) RemoveAttendee(ctx context.Context, e *models.Event, memberID uint) error {
	return r.removeLink(ctx, eventAttendees, e.ID, memberID)
}

// Delete removes an event and its attendee list
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.deleteWith(ctx, id, func(tx *gorm.DB, e *models.Event) error {
		return clearAssociations(tx, e, "Attendees")
	})
}
