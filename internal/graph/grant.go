package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type grantResolver struct {
	base
	r *Resolver
	g *models.Grant
}

func (r *Resolver) grant(g *models.Grant) *grantResolver {
	return &grantResolver{base: base{g.Base}, r: r, g: g}
}

func (r *Resolver) grantByID(ctx context.Context, id *uint) (*grantResolver, error) {
	if id == nil {
		return nil, nil
	}
	g, err := r.svc.Grants.Get(ctx, *id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.grant(g), nil
}

func (x *grantResolver) Title() string { return x.g.Title }
func (x *grantResolver) Agency() string { return x.g.Agency }
func (x *grantResolver) ReferenceNumber() *string { return x.g.ReferenceNumber }
func (x *grantResolver) Description() *string { return x.g.Description }
func (x *grantResolver) Budget() float64 { return x.g.Budget }
func (x *grantResolver) Status() string { return string(x.g.Status) }
func (x *grantResolver) StartDate() *graphql.Time { return gqlTimePtr(x.g.StartDate) }
func (x *grantResolver) EndDate() *graphql.Time { return gqlTimePtr(x.g.EndDate) }
func (x *grantResolver) Deadline() *graphql.Time { return gqlTimePtr(x.g.Deadline) }

func (x *grantResolver) Spent(ctx context.Context) (float64, error) {
	b, err := x.r.svc.Grants.Budget(ctx, x.g)
	return b.Spent, err
}

func (x *grantResolver) Remaining(ctx context.Context) (float64, error) {
	b, err := x.r.svc.Grants.Budget(ctx, x.g)
	return b.Remaining, err
}

func (x *grantResolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	items, err := x.r.svc.Grants.Projects(ctx, x.g)
	return wrapAll(items, x.r.project), err
}

func (x *grantResolver) Expenses(ctx context.Context, args RelationArgs) ([]*expenseResolver, error) {
	items, err := x.r.svc.Expenses.List(ctx, repos.ExpenseFilter{GrantID: &x.g.ID}, args.options())
	return wrapAll(items, x.r.expense), err
}

type grantInput struct {
	Title           *string
	Agency          *string
	ReferenceNumber *string
	Description     *string
	Budget          *float64
	Status          *string
	StartDate       *graphql.Time
	EndDate         *graphql.Time
	Deadline        *graphql.Time
	ProjectIDs      *[]graphql.ID
}

func (in grantInput) service() (services.GrantInput, error) {
	var p idParser
	out := services.GrantInput{
		Title:           in.Title,
		Agency:          in.Agency,
		ReferenceNumber: in.ReferenceNumber,
		Description:     in.Description,
		Budget:          in.Budget,
		Status:          enum[models.GrantStatus](in.Status),
		StartDate:       fromTime(in.StartDate),
		EndDate:         fromTime(in.EndDate),
		Deadline:        fromTime(in.Deadline),
		ProjectIDs:      p.many(in.ProjectIDs),
	}
	return out, p.err
}

// Grants lists grants
func (r *Resolver) Grants(ctx context.Context, args struct {
	PageArgs
	Status    *string
	ProjectID *graphql.ID
}) ([]*grantResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.GrantFilter{
		Status:    enum[models.GrantStatus](args.Status),
		ProjectID: p.one(args.ProjectID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Grants.List(ctx, f, args.options())
	return wrapAll(items, r.grant), err
}

// Grant returns a grant or null
func (r *Resolver) Grant(ctx context.Context, args idArgs) (*grantResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	return r.grantByID(ctx, &id)
}

// CreateGrant adds a grant
func (r *Resolver) CreateGrant(ctx context.Context, args struct{ Input grantInput }) (*grantResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	g, err := r.svc.Grants.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.grant(g), nil
}

// UpdateGrant edits a grant
func (r *Resolver) UpdateGrant(ctx context.Context, args struct {
	ID    graphql.ID
	Input grantInput
}) (*grantResolver, error) {
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
	g, err := r.svc.Grants.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.grant(g), nil
}

// DeleteGrant removes a grant
func (r *Resolver) DeleteGrant(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Grants.Delete)
}
