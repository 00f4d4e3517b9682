package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type equipmentResolver struct {
	base
	r *Resolver
	e *models.Equipment
}

func (r *Resolver) equipment(e *models.Equipment) *equipmentResolver {
	return &equipmentResolver{base: base{e.Base}, r: r, e: e}
}

func (x *equipmentResolver) Name() string { return x.e.Name }
func (x *equipmentResolver) Description() *string { return x.e.Description }
func (x *equipmentResolver) SerialNumber() *string { return x.e.SerialNumber }
func (x *equipmentResolver) Location() *string { return x.e.Location }
func (x *equipmentResolver) PurchaseDate() *graphql.Time { return gqlTimePtr(x.e.PurchaseDate) }
func (x *equipmentResolver) Status() string { return string(x.e.Status) }

func (x *equipmentResolver) Member(ctx context.Context) (*memberResolver, error) {
	return x.r.memberByID(ctx, x.e.MemberID)
}

func (x *equipmentResolver) Project(ctx context.Context) (*projectResolver, error) {
	return x.r.projectByID(ctx, x.e.ProjectID)
}

func (x *equipmentResolver) Bookings(ctx context.Context, args RelationArgs) ([]*bookingResolver, error) {
	items, err := x.r.svc.Bookings.List(ctx, repos.BookingFilter{EquipmentID: &x.e.ID}, args.options())
	return wrapAll(items, x.r.booking), err
}

func (x *equipmentResolver) Protocols(ctx context.Context) ([]*protocolResolver, error) {
	items, err := x.r.svc.Equipment.Protocols(ctx, x.e)
	return wrapAll(items, x.r.protocol), err
}

type equipmentInput struct {
	Name         *string
	Description  *string
	SerialNumber *string
	Location     *string
	PurchaseDate *graphql.Time
	Status       *string
	MemberID     *graphql.ID
	ProjectID    *graphql.ID
	Unassign     *bool
}

func (in equipmentInput) service() (services.EquipmentInput, error) {
	var p idParser
	out := services.EquipmentInput{
		Name:         in.Name,
		Description:  in.Description,
		SerialNumber: in.SerialNumber,
		Location:     in.Location,
		PurchaseDate: fromTime(in.PurchaseDate),
		Status:       enum[models.EquipmentStatus](in.Status),
		MemberID:     p.one(in.MemberID),
		ProjectID:    p.one(in.ProjectID),
		Unassign:     in.Unassign != nil && *in.Unassign,
	}
	return out, p.err
}

// EquipmentList lists equipment
func (r *Resolver) EquipmentList(ctx context.Context, args struct {
	PageArgs
	Status    *string
	MemberID  *graphql.ID
	ProjectID *graphql.ID
}) ([]*equipmentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.EquipmentFilter{
		Status:    enum[models.EquipmentStatus](args.Status),
		MemberID:  p.one(args.MemberID),
		ProjectID: p.one(args.ProjectID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Equipment.List(ctx, f, args.options())
	return wrapAll(items, r.equipment), err
}

// Equipment returns a piece of equipment or null
func (r *Resolver) Equipment(ctx context.Context, args idArgs) (*equipmentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Equipment.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.equipment(e), nil
}

// CreateEquipment adds equipment; its status follows from the assignment
func (r *Resolver) CreateEquipment(ctx context.Context, args struct{ Input equipmentInput }) (*equipmentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Equipment.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.equipment(e), nil
}

// UpdateEquipment edits equipment and re-derives its status
func (r *Resolver) UpdateEquipment(ctx context.Context, args struct {
	ID    graphql.ID
	Input equipmentInput
}) (*equipmentResolver, error) {
	return r.equipmentOp(ctx, args.ID, func(id uint) (*models.Equipment, error) {
		in, err := args.Input.service()
		if err != nil {
			return nil, err
		}
		return r.svc.Equipment.Update(ctx, id, in)
	})
}

// DeleteEquipment removes equipment and its bookings
func (r *Resolver) DeleteEquipment(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Equipment.Delete)
}

// AssignEquipment gives equipment to a member or a project
func (r *Resolver) AssignEquipment(ctx context.Context, args struct {
	ID        graphql.ID
	MemberID  *graphql.ID
	ProjectID *graphql.ID
}) (*equipmentResolver, error) {
	return r.equipmentOp(ctx, args.ID, func(id uint) (*models.Equipment, error) {
		var p idParser
		memberID, projectID := p.one(args.MemberID), p.one(args.ProjectID)
		if p.err != nil {
			return nil, p.err
		}
		return r.svc.Equipment.Assign(ctx, id, memberID, projectID)
	})
}

// ReleaseEquipment clears the assignment of equipment
func (r *Resolver) ReleaseEquipment(ctx context.Context, args idArgs) (*equipmentResolver, error) {
	return r.equipmentOp(ctx, args.ID, func(id uint) (*models.Equipment, error) {
		return r.svc.Equipment.Release(ctx, id)
	})
}

// SetEquipmentMaintenance moves unassigned equipment in or out of maintenance
func (r *Resolver) SetEquipmentMaintenance(ctx context.Context, args struct {
	ID          graphql.ID
	Maintenance bool
}) (*equipmentResolver, error) {
	return r.equipmentOp(ctx, args.ID, func(id uint) (*models.Equipment, error) {
		return r.svc.Equipment.SetMaintenance(ctx, id, args.Maintenance)
	})
}

func (r *Resolver) equipmentOp(ctx context.Context, rawID graphql.ID, fn func(uint) (*models.Equipment, error)) (*equipmentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	e, err := fn(id)
	if err != nil {
		return nil, err
	}
	return r.equipment(e), nil
}
