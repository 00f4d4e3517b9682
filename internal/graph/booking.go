package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/services"
)

type bookingResolver struct {
	base
	r *Resolver
	b *models.Booking
}

func (r *Resolver) booking(b *models.Booking) *bookingResolver {
	return &bookingResolver{base: base{b.Base}, r: r, b: b}
}

func (x *bookingResolver) StartTime() graphql.Time { return gqlTime(x.b.StartTime) }
func (x *bookingResolver) EndTime() graphql.Time { return gqlTime(x.b.EndTime) }
func (x *bookingResolver) Purpose() *string { return x.b.Purpose }

func (x *bookingResolver) Equipment(ctx context.Context) (*equipmentResolver, error) {
	e, err := x.r.svc.Equipment.Get(ctx, x.b.EquipmentID)
	if err != nil {
		return nil, err
	}
	return x.r.equipment(e), nil
}

func (x *bookingResolver) Member(ctx context.Context) (*memberResolver, error) {
	m, err := x.r.memberByID(ctx, &x.b.MemberID)
	if err == nil && m == nil {
		err = domain.NotFound("member", x.b.MemberID)
	}
	return m, err
}

func (x *bookingResolver) Project(ctx context.Context) (*projectResolver, error) {
	return x.r.projectByID(ctx, x.b.ProjectID)
}

type bookingInput struct {
	EquipmentID *graphql.ID
	MemberID    *graphql.ID
	ProjectID   *graphql.ID
	StartTime   *graphql.Time
	EndTime     *graphql.Time
	Purpose     *string
}

func (in bookingInput) service() (services.BookingInput, error) {
	var p idParser
	out := services.BookingInput{
		EquipmentID: p.one(in.EquipmentID),
		MemberID:    p.one(in.MemberID),
		ProjectID:   p.one(in.ProjectID),
		StartTime:   fromTime(in.StartTime),
		EndTime:     fromTime(in.EndTime),
		Purpose:     in.Purpose,
	}
	return out, p.err
}

// Bookings lists bookings
func (r *Resolver) Bookings(ctx context.Context, args struct {
	PageArgs
	EquipmentID *graphql.ID
	MemberID    *graphql.ID
	ProjectID   *graphql.ID
	From        *graphql.Time
	To          *graphql.Time
}) ([]*bookingResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.BookingFilter{
		EquipmentID: p.one(args.EquipmentID),
		MemberID:    p.one(args.MemberID),
		ProjectID:   p.one(args.ProjectID),
		From:        fromTime(args.From),
		To:          fromTime(args.To),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Bookings.List(ctx, f, args.options())
	return wrapAll(items, r.booking), err
}

// Booking returns a booking or null
func (r *Resolver) Booking(ctx context.Context, args idArgs) (*bookingResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	b, err := r.svc.Bookings.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.booking(b), nil
}

// CreateBooking reserves equipment
func (r *Resolver) CreateBooking(ctx context.Context, args struct{ Input bookingInput }) (*bookingResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	b, err := r.svc.Bookings.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.booking(b), nil
}

// UpdateBooking moves or edits a booking
func (r *Resolver) UpdateBooking(ctx context.Context, args struct {
	ID    graphql.ID
	Input bookingInput
}) (*bookingResolver, error) {
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
	b, err := r.svc.Bookings.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.booking(b), nil
}

// DeleteBooking cancels a booking
func (r *Resolver) DeleteBooking(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Bookings.Delete)
}
