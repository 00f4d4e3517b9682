package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type memberResolver struct {
	base
	r *Resolver
	m *models.Member
}

func (r *Resolver) member(m *models.Member) *memberResolver {
	return &memberResolver{base: base{m.Base}, r: r, m: m}
}

// memberByID resolves an optional reference; a dangling one resolves to null
func (r *Resolver) memberByID(ctx context.Context, id *uint) (*memberResolver, error) {
	if id == nil {
		return nil, nil
	}
	m, err := r.svc.Members.Get(ctx, *id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.member(m), nil
}

func (x *memberResolver) Name() string { return x.m.Name }
func (x *memberResolver) Email() string { return x.m.Email }
func (x *memberResolver) Role() string { return string(x.m.Role) }
func (x *memberResolver) Status() string { return string(x.m.Status) }
func (x *memberResolver) Title() *string { return x.m.Title }
func (x *memberResolver) Phone() *string { return x.m.Phone }
func (x *memberResolver) Bio() *string { return x.m.Bio }
func (x *memberResolver) AvatarURL() *string { return x.m.AvatarURL }
func (x *memberResolver) ResearchInterests() *string { return x.m.ResearchInterests }
func (x *memberResolver) JoinedAt() *graphql.Time { return gqlTimePtr(x.m.JoinedAt) }

func (x *memberResolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	items, err := x.r.svc.Members.Projects(ctx, x.m)
	return wrapAll(items, x.r.project), err
}

func (x *memberResolver) Publications(ctx context.Context) ([]*publicationResolver, error) {
	items, err := x.r.svc.Members.Publications(ctx, x.m)
	return wrapAll(items, x.r.publication), err
}

func (x *memberResolver) Events(ctx context.Context) ([]*eventResolver, error) {
	items, err := x.r.svc.Members.Events(ctx, x.m)
	return wrapAll(items, x.r.event), err
}

func (x *memberResolver) Equipment(ctx context.Context, args RelationArgs) ([]*equipmentResolver, error) {
	items, err := x.r.svc.Equipment.List(ctx, repos.EquipmentFilter{MemberID: &x.m.ID}, args.options())
	return wrapAll(items, x.r.equipment), err
}

func (x *memberResolver) Bookings(ctx context.Context, args RelationArgs) ([]*bookingResolver, error) {
	items, err := x.r.svc.Bookings.List(ctx, repos.BookingFilter{MemberID: &x.m.ID}, args.options())
	return wrapAll(items, x.r.booking), err
}

func (x *memberResolver) AcademicInfo(ctx context.Context, args RelationArgs) ([]*academicInfoResolver, error) {
	items, err := x.r.svc.AcademicInfo.List(ctx, &x.m.ID, args.options())
	return wrapAll(items, x.r.academicInfo), err
}

func (x *memberResolver) NoteTasks(ctx context.Context, args RelationArgs) ([]*noteTaskResolver, error) {
	items, err := x.r.svc.NoteTasks.List(ctx, repos.NoteTaskFilter{MemberID: &x.m.ID}, args.options())
	return wrapAll(items, x.r.noteTask), err
}

type memberInput struct {
	Name              *string
	Email             *string
	Role              *string
	Status            *string
	Title             *string
	Phone             *string
	Bio               *string
	AvatarURL         *string
	ResearchInterests *string
	JoinedAt          *graphql.Time
	ProjectIDs        *[]graphql.ID
}

func (in memberInput) service() (services.MemberInput, error) {
	var p idParser
	out := services.MemberInput{
		Name:              in.Name,
		Email:             in.Email,
		Role:              enum[models.MemberRole](in.Role),
		Status:            enum[models.MemberStatus](in.Status),
		Title:             in.Title,
		Phone:             in.Phone,
		Bio:               in.Bio,
		AvatarURL:         in.AvatarURL,
		ResearchInterests: in.ResearchInterests,
		JoinedAt:          fromTime(in.JoinedAt),
		ProjectIDs:        p.many(in.ProjectIDs),
	}
	return out, p.err
}

// Members lists members
func (r *Resolver) Members(ctx context.Context, args struct {
	PageArgs
	Role      *string
	Status    *string
	ProjectID *graphql.ID
}) ([]*memberResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.MemberFilter{
		Role:      enum[models.MemberRole](args.Role),
		Status:    enum[models.MemberStatus](args.Status),
		ProjectID: p.one(args.ProjectID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Members.List(ctx, f, args.options())
	return wrapAll(items, r.member), err
}

// Member returns a member or null
func (r *Resolver) Member(ctx context.Context, args idArgs) (*memberResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	return r.memberByID(ctx, &id)
}

// CreateMember adds a member
func (r *Resolver) CreateMember(ctx context.Context, args struct{ Input memberInput }) (*memberResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	m, err := r.svc.Members.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.member(m), nil
}

// UpdateMember edits a member
func (r *Resolver) UpdateMember(ctx context.Context, args struct {
	ID    graphql.ID
	Input memberInput
}) (*memberResolver, error) {
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
	m, err := r.svc.Members.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.member(m), nil
}

// DeleteMember removes a member
func (r *Resolver) DeleteMember(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Members.Delete)
}

// delete is shared by the deleteX mutations
func (r *Resolver) delete(ctx context.Context, rawID graphql.ID, fn func(context.Context, uint) error) (bool, error) {
	if err := r.authorize(ctx); err != nil {
		return false, err
	}
	id, err := parseID(rawID)
	if err != nil {
		return false, err
	}
	if err := fn(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
