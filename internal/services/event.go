package services

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// EventInput carries the fields of a create or update
type EventInput struct {
	Title       *string
	Description *string
	Type        *models.EventType
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
	ProjectID   *uint
	AttendeeIDs *[]uint
}

func (in EventInput) apply(e *models.Event) {
	setTrimmed(&e.Title, in.Title)
	setText(&e.Description, in.Description)
	set(&e.Type, in.Type)
	if in.StartTime != nil {
		e.StartTime = utc(*in.StartTime)
	}
	setTime(&e.EndTime, in.EndTime)
	setText(&e.Location, in.Location)
	setRef(&e.ProjectID, in.ProjectID)
}

func validateEvent(e *models.Event) error {
	return validate(validation.ValidateStruct(e,
		validation.Field(&e.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&e.Type, validation.Required, oneOf(models.EventTypes)),
		validation.Field(&e.StartTime, validation.Required),
		validation.Field(&e.EndTime, notBefore(&e.StartTime)),
	))
}

// Event handles calendar events
type Event struct {
	store *repos.Store
}

// NewEventService creates a new event service instance
func NewEventService(store *repos.Store) *Event {
	return &Event{store: store}
}

// Create creates a new event
func (s *Event) Create(ctx context.Context, in EventInput) (*models.Event, error) {
	e := &models.Event{Type: models.EventTypeMeeting}
	if err := s.save(ctx, e, in, true); err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies in to an existing event
func (s *Event) Update(ctx context.Context, id uint, in EventInput) (*models.Event, error) {
	e, err := s.store.Events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, e, in, false); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Event) save(ctx context.Context, e *models.Event, in EventInput, create bool) error {
	in.apply(e)
	if err := validateEvent(e); err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx *repos.Store) error {
		if err := tx.Projects.RequireIDs(ctx, optional(e.ProjectID)...); err != nil {
			return err
		}
		if err := tx.Members.RequireIDs(ctx, ids(in.AttendeeIDs)...); err != nil {
			return err
		}
		var err error
		if create {
			err = tx.Events.Create(ctx, e)
		} else {
			err = tx.Events.Update(ctx, e)
		}
		if err != nil {
			return err
		}
		if in.AttendeeIDs != nil {
			return tx.Events.ReplaceAttendees(ctx, e, ids(in.AttendeeIDs))
		}
		return nil
	})
}

// Get retrieves an event by ID
func (s *Event) Get(ctx context.Context, id uint) (*models.Event, error) {
	return s.store.Events.Get(ctx, id)
}

// List retrieves events matching the filter
func (s *Event) List(ctx context.Context, f repos.EventFilter, opts *models.ListOptions) ([]models.Event, error) {
	return s.store.Events.List(ctx, f, opts)
}

// Delete deletes an event
func (s *Event) Delete(ctx context.Context, id uint) error {
	return s.store.Events.Delete(ctx, id)
}

// Attendees returns the members attending an event
func (s *Event) Attendees(ctx context.Context, e *models.Event) ([]models.Member, error) {
	return s.store.Events.Attendees(ctx, e)
}

// AddAttendee adds a member to an event
func (s *Event) AddAttendee(ctx context.Context, eventID, memberID uint) (*models.Event, error) {
	e, err := s.store.Events.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Members.RequireIDs(ctx, memberID); err != nil {
		return nil, err
	}
	return e, s.store.Events.AddAttendee(ctx, e, memberID)
}

// RemoveAttendee removes a member from an event
func (s *Event) RemoveAttendee(ctx context.Context, eventID, memberID uint) (*models.Event, error) {
	e, err := s.store.Events.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return e, s.store.Events.RemoveAttendee(ctx, e, memberID)
}
