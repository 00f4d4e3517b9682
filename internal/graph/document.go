package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type documentResolver struct {
	base
	r *Resolver
	d *models.Document
}

func (r *Resolver) document(d *models.Document) *documentResolver {
	return &documentResolver{base: base{d.Base}, r: r, d: d}
}

func (x *documentResolver) Title() string { return x.d.Title }
func (x *documentResolver) Description() *string { return x.d.Description }
func (x *documentResolver) Type() string { return string(x.d.Type) }
func (x *documentResolver) FileName() *string { return x.d.FileName }
func (x *documentResolver) ContentType() *string { return x.d.ContentType }
func (x *documentResolver) Size() float64 { return float64(x.d.Size) }
func (x *documentResolver) HasContent() bool { return x.d.HasContent() }

// DownloadURL is a presigned link when the blob store supports one, else the API content route
func (x *documentResolver) DownloadURL(ctx context.Context) (*string, error) {
	return x.r.svc.Documents.DownloadURL(ctx, x.d)
}

func (x *documentResolver) Project(ctx context.Context) (*projectResolver, error) {
	return x.r.projectByID(ctx, x.d.ProjectID)
}

func (x *documentResolver) Member(ctx context.Context) (*memberResolver, error) {
	return x.r.memberByID(ctx, x.d.MemberID)
}

type documentInput struct {
	Title       *string
	Description *string
	Type        *string
	ProjectID   *graphql.ID
	MemberID    *graphql.ID
}

func (in documentInput) service() (services.DocumentInput, error) {
	var p idParser
	out := services.DocumentInput{
		Title:       in.Title,
		Description: in.Description,
		Type:        enum[models.DocumentType](in.Type),
		ProjectID:   p.one(in.ProjectID),
		MemberID:    p.one(in.MemberID),
	}
	return out, p.err
}

// Documents lists document metadata
func (r *Resolver) Documents(ctx context.Context, args struct {
	PageArgs
	Type      *string
	ProjectID *graphql.ID
	MemberID  *graphql.ID
}) ([]*documentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.DocumentFilter{
		Type:      enum[models.DocumentType](args.Type),
		ProjectID: p.one(args.ProjectID),
		MemberID:  p.one(args.MemberID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Documents.List(ctx, f, args.options())
	return wrapAll(items, r.document), err
}

func (r *Resolver) Document(ctx context.Context, args idArgs) (*documentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	d, err := r.svc.Documents.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.document(d), nil
}

// CreateDocument records document metadata. Content is uploaded over REST.
func (r *Resolver) CreateDocument(ctx context.Context, args struct{ Input documentInput }) (*documentResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	d, err := r.svc.Documents.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.document(d), nil
}

func (r *Resolver) UpdateDocument(ctx context.Context, args struct {
	ID    graphql.ID
	Input documentInput
}) (*documentResolver, error) {
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
	d, err := r.svc.Documents.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.document(d), nil
}

// DeleteDocument removes the metadata and the stored content
func (r *Resolver) DeleteDocument(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Documents.Delete)
}
