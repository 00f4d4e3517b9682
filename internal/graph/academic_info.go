package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/services"
)

type academicInfoResolver struct {
	base
	r *Resolver
	a *models.AcademicInfo
}

func (r *Resolver) academicInfo(a *models.AcademicInfo) *academicInfoResolver {
	return &academicInfoResolver{base: base{a.Base}, r: r, a: a}
}

func (x *academicInfoResolver) Degree() string { return x.a.Degree }
func (x *academicInfoResolver) Field() *string { return x.a.Field }
func (x *academicInfoResolver) Institution() string { return x.a.Institution }
func (x *academicInfoResolver) Year() *int32 { return int32Ptr(x.a.Year) }
func (x *academicInfoResolver) ThesisTitle() *string { return x.a.ThesisTitle }
func (x *academicInfoResolver) Advisor() *string { return x.a.Advisor }

func (x *academicInfoResolver) Member(ctx context.Context) (*memberResolver, error) {
	m, err := x.r.memberByID(ctx, &x.a.MemberID)
	if err == nil && m == nil {
		err = domain.NotFound("member", x.a.MemberID)
	}
	return m, err
}

type academicInfoInput struct {
	MemberID    *graphql.ID
	Degree      *string
	Field       *string
	Institution *string
	Year        *int32
	ThesisTitle *string
	Advisor     *string
}

func (in academicInfoInput) service() (services.AcademicInfoInput, error) {
	memberID, err := parseOptionalID(in.MemberID)
	return services.AcademicInfoInput{
		MemberID:    memberID,
		Degree:      in.Degree,
		Field:       in.Field,
		Institution: in.Institution,
		Year:        intPtr(in.Year),
		ThesisTitle: in.ThesisTitle,
		Advisor:     in.Advisor,
	}, err
}

// AcademicInfos lists degrees, optionally for one member
func (r *Resolver) AcademicInfos(ctx context.Context, args struct {
	PageArgs
	MemberID *graphql.ID
}) ([]*academicInfoResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	memberID, err := parseOptionalID(args.MemberID)
	if err != nil {
		return nil, err
	}
	items, err := r.svc.AcademicInfo.List(ctx, memberID, args.options())
	return wrapAll(items, r.academicInfo), err
}

func (r *Resolver) AcademicInfo(ctx context.Context, args idArgs) (*academicInfoResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	a, err := r.svc.AcademicInfo.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.academicInfo(a), nil
}

func (r *Resolver) CreateAcademicInfo(ctx context.Context, args struct{ Input academicInfoInput }) (*academicInfoResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	a, err := r.svc.AcademicInfo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.academicInfo(a), nil
}

func (r *Resolver) UpdateAcademicInfo(ctx context.Context, args struct {
	ID    graphql.ID
	Input academicInfoInput
}) (*academicInfoResolver, error) {
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
	a, err := r.svc.AcademicInfo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.academicInfo(a), nil
}

func (r *Resolver) DeleteAcademicInfo(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.AcademicInfo.Delete)
}
