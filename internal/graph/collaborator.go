package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type collaboratorResolver struct {
	base
	r *Resolver
	c *models.Collaborator
}

func (r *Resolver) collaborator(c *models.Collaborator) *collaboratorResolver {
	return &collaboratorResolver{base: base{c.Base}, r: r, c: c}
}

func (x *collaboratorResolver) Name() string { return x.c.Name }
func (x *collaboratorResolver) Email() *string { return x.c.Email }
func (x *collaboratorResolver) Institution() *string { return x.c.Institution }
func (x *collaboratorResolver) Expertise() *string { return x.c.Expertise }
func (x *collaboratorResolver) Notes() *string { return x.c.Notes }

func (x *collaboratorResolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	items, err := x.r.svc.Collaborators.Projects(ctx, x.c)
	return wrapAll(items, x.r.project), err
}

func (x *collaboratorResolver) Publications(ctx context.Context) ([]*publicationResolver, error) {
	items, err := x.r.svc.Collaborators.Publications(ctx, x.c)
	return wrapAll(items, x.r.publication), err
}

type collaboratorInput struct {
	Name        *string
	Email       *string
	Institution *string
	Expertise   *string
	Notes       *string
	ProjectIDs  *[]graphql.ID
}

func (in collaboratorInput) service() (services.CollaboratorInput, error) {
	ids, err := parseIDs(in.ProjectIDs)
	return services.CollaboratorInput{
		Name:        in.Name,
		Email:       in.Email,
		Institution: in.Institution,
		Expertise:   in.Expertise,
		Notes:       in.Notes,
		ProjectIDs:  ids,
	}, err
}

// Collaborators lists external collaborators
func (r *Resolver) Collaborators(ctx context.Context, args struct {
	PageArgs
	ProjectID     *graphql.ID
	PublicationID *graphql.ID
}) ([]*collaboratorResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.CollaboratorFilter{
		ProjectID:     p.one(args.ProjectID),
		PublicationID: p.one(args.PublicationID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Collaborators.List(ctx, f, args.options())
	return wrapAll(items, r.collaborator), err
}

func (r *Resolver) Collaborator(ctx context.Context, args idArgs) (*collaboratorResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	c, err := r.svc.Collaborators.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.collaborator(c), nil
}

func (r *Resolver) CreateCollaborator(ctx context.Context, args struct{ Input collaboratorInput }) (*collaboratorResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	c, err := r.svc.Collaborators.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.collaborator(c), nil
}

func (r *Resolver) UpdateCollaborator(ctx context.Context, args struct {
	ID    graphql.ID
	Input collaboratorInput
}) (*collaboratorResolver, error) {
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
	c, err := r.svc.Collaborators.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.collaborator(c), nil
}

func (r *Resolver) DeleteCollaborator(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Collaborators.Delete)
}
