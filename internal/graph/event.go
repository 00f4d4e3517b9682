package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type eventResolver struct {
	base
	r *Resolver
	e *models.Event
}

func (r *Resolver) event(e *models.Event) *eventResolver {
	return &eventResolver{base: base{e.Base}, r: r, e: e}
}

func (x *eventResolver) Title() string { return x.e.Title }
func (x *eventResolver) Description() *string { return x.e.Description }
func (x *eventResolver) Type() string { return string(x.e.Type) }
func (x *eventResolver) StartTime() graphql.Time { return gqlTime(x.e.StartTime) }
func (x *eventResolver) EndTime() *graphql.Time { return gqlTimePtr(x.e.EndTime) }
func (x *eventResolver) Location() *string { return x.e.Location }

func (x *eventResolver) Project(ctx context.Context) (*projectResolver, error) {
	return x.r.projectByID(ctx, x.e.ProjectID)
}

func (x *eventResolver) Attendees(ctx context.Context) ([]*memberResolver, error) {
	items, err := x.r.svc.Events.Attendees(ctx, x.e)
	return wrapAll(items, x.r.member), err
}

type eventInput struct {
	Title       *string
	Description *string
	Type        *string
	StartTime   *graphql.Time
	EndTime     *graphql.Time
	Location    *string
	ProjectID   *graphql.ID
	AttendeeIDs *[]graphql.ID
}

func (in eventInput) service() (services.EventInput, error) {
	var p idParser
	out := services.EventInput{
		Title:       in.Title,
		Description: in.Description,
		Type:        enum[models.EventType](in.Type),
		StartTime:   fromTime(in.StartTime),
		EndTime:     fromTime(in.EndTime),
		Location:    in.Location,
		ProjectID:   p.one(in.ProjectID),
		AttendeeIDs: p.many(in.AttendeeIDs),
	}
	return out, p.err
}

// Events lists events
func (r *Resolver) Events(ctx context.Context, args struct {
	PageArgs
	Type      *string
	ProjectID *graphql.ID
	MemberID  *graphql.ID
	From      *graphql.Time
	To        *graphql.Time
}) ([]*eventResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.EventFilter{
		Type:      enum[models.EventType](args.Type),
		ProjectID: p.one(args.ProjectID),
		MemberID:  p.one(args.MemberID),
		From:      fromTime(args.From),
		To:        fromTime(args.To),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Events.List(ctx, f, args.options())
	return wrapAll(items, r.event), err
}

// Event returns an event or null
func (r *Resolver) Event(ctx context.Context, args idArgs) (*eventResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Events.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.event(e), nil
}

// CreateEvent schedules an event
func (r *Resolver) CreateEvent(ctx context.Context, args struct{ Input eventInput }) (*eventResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Events.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.event(e), nil
}

// UpdateEvent edits an event
func (r *Resolver) UpdateEvent(ctx context.Context, args struct {
	ID    graphql.ID
	Input eventInput
}) (*eventResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Events.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.event(e), nil
}

// DeleteEvent removes an event
func (r *Resolver) DeleteEvent(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Events.Delete)
}

type attendeeArgs struct {
	EventID  graphql.ID
	MemberID graphql.ID
}

// AddEventAttendee adds a member to an event
func (r *Resolver) AddEventAttendee(ctx context.Context, args attendeeArgs) (*eventResolver, error) {
	return r.attendee(ctx, args, r.svc.Events.AddAttendee)
}

// RemoveEventAttendee removes a member from an event
func (r *Resolver) RemoveEventAttendee(ctx context.Context, args attendeeArgs) (*eventResolver, error) {
	return r.attendee(ctx, args, r.svc.Events.RemoveAttendee)
}

func (r *Resolver) attendee(ctx context.Context, args attendeeArgs,
	fn func(context.Context, uint, uint) (*models.Event, error)) (*eventResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	eventID, err := parseID(args.EventID)
	if err != nil {
		return nil, err
	}
	memberID, err := parseID(args.MemberID)
	if err != nil {
		return nil, err
	}
	e, err := fn(ctx, eventID, memberID)
	if err != nil {
		return nil, err
	}
	return r.event(e), nil
}
