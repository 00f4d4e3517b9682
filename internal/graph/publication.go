package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type publicationResolver struct {
	base
	r *Resolver
	p *models.Publication
}

func (r *Resolver) publication(p *models.Publication) *publicationResolver {
	return &publicationResolver{base: base{p.Base}, r: r, p: p}
}

func (x *publicationResolver) Title() string { return x.p.Title }
func (x *publicationResolver) Abstract() *string { return x.p.Abstract }
func (x *publicationResolver) Venue() *string { return x.p.Venue }
func (x *publicationResolver) DOI() *string { return x.p.DOI }
func (x *publicationResolver) URL() *string { return x.p.URL }
func (x *publicationResolver) Status() string { return string(x.p.Status) }
func (x *publicationResolver) PublishedAt() *graphql.Time { return gqlTimePtr(x.p.PublishedAt) }

func (x *publicationResolver) Authors(ctx context.Context) ([]*memberResolver, error) {
	items, err := x.r.svc.Publications.Authors(ctx, x.p)
	return wrapAll(items, x.r.member), err
}

func (x *publicationResolver) Collaborators(ctx context.Context) ([]*collaboratorResolver, error) {
	items, err := x.r.svc.Publications.Collaborators(ctx, x.p)
	return wrapAll(items, x.r.collaborator), err
}

func (x *publicationResolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	items, err := x.r.svc.Publications.Projects(ctx, x.p)
	return wrapAll(items, x.r.project), err
}

type publicationInput struct {
	Title           *string
	Abstract        *string
	Venue           *string
	DOI             *string
	URL             *string
	Status          *string
	PublishedAt     *graphql.Time
	AuthorIDs       *[]graphql.ID
	CollaboratorIDs *[]graphql.ID
	ProjectIDs      *[]graphql.ID
}

func (in publicationInput) service() (services.PublicationInput, error) {
	var p idParser
	out := services.PublicationInput{
		Title:           in.Title,
		Abstract:        in.Abstract,
		Venue:           in.Venue,
		DOI:             in.DOI,
		URL:             in.URL,
		Status:          enum[models.PublicationStatus](in.Status),
		PublishedAt:     fromTime(in.PublishedAt),
		AuthorIDs:       p.many(in.AuthorIDs),
		CollaboratorIDs: p.many(in.CollaboratorIDs),
		ProjectIDs:      p.many(in.ProjectIDs),
	}
	return out, p.err
}

// Publications lists publications
func (r *Resolver) Publications(ctx context.Context, args struct {
	PageArgs
	Status    *string
	AuthorID  *graphql.ID
	ProjectID *graphql.ID
}) ([]*publicationResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.PublicationFilter{
		Status:    enum[models.PublicationStatus](args.Status),
		AuthorID:  p.one(args.AuthorID),
		ProjectID: p.one(args.ProjectID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Publications.List(ctx, f, args.options())
	return wrapAll(items, r.publication), err
}

// Publication returns a publication or null
func (r *Resolver) Publication(ctx context.Context, args idArgs) (*publicationResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Publications.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.publication(p), nil
}

func (r *Resolver) CreatePublication(ctx context.Context, args struct{ Input publicationInput }) (*publicationResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Publications.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.publication(p), nil
}

func (r *Resolver) UpdatePublication(ctx context.Context, args struct {
	ID    graphql.ID
	Input publicationInput
}) (*publicationResolver, error) {
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
	p, err := r.svc.Publications.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.publication(p), nil
}

func (r *Resolver) DeletePublication(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Publications.Delete)
}
