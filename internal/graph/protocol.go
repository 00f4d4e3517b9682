package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type protocolResolver struct {
	base
	r *Resolver
	p *models.Protocol
}

func (r *Resolver) protocol(p *models.Protocol) *protocolResolver {
	return &protocolResolver{base: base{p.Base}, r: r, p: p}
}

func (x *protocolResolver) Title() string { return x.p.Title }
func (x *protocolResolver) Description() *string { return x.p.Description }
func (x *protocolResolver) Category() *string { return x.p.Category }
func (x *protocolResolver) Version() string { return x.p.Version }
func (x *protocolResolver) Content() *string { return x.p.Content }

func (x *protocolResolver) Author(ctx context.Context) (*memberResolver, error) {
	return x.r.memberByID(ctx, x.p.AuthorID)
}

func (x *protocolResolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	items, err := x.r.svc.Protocols.Projects(ctx, x.p)
	return wrapAll(items, x.r.project), err
}

func (x *protocolResolver) Equipment(ctx context.Context) ([]*equipmentResolver, error) {
	items, err := x.r.svc.Protocols.Equipment(ctx, x.p)
	return wrapAll(items, x.r.equipment), err
}

type protocolInput struct {
	Title        *string
	Description  *string
	Category     *string
	Version      *string
	Content      *string
	AuthorID     *graphql.ID
	ProjectIDs   *[]graphql.ID
	EquipmentIDs *[]graphql.ID
}

func (in protocolInput) service() (services.ProtocolInput, error) {
	var p idParser
	out := services.ProtocolInput{
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Version:      in.Version,
		Content:      in.Content,
		AuthorID:     p.one(in.AuthorID),
		ProjectIDs:   p.many(in.ProjectIDs),
		EquipmentIDs: p.many(in.EquipmentIDs),
	}
	return out, p.err
}

// Protocols lists lab procedures
func (r *Resolver) Protocols(ctx context.Context, args struct {
	PageArgs
	Category    *string
	AuthorID    *graphql.ID
	ProjectID   *graphql.ID
	EquipmentID *graphql.ID
}) ([]*protocolResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.ProtocolFilter{
		Category:    args.Category,
		AuthorID:    p.one(args.AuthorID),
		ProjectID:   p.one(args.ProjectID),
		EquipmentID: p.one(args.EquipmentID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Protocols.List(ctx, f, args.options())
	return wrapAll(items, r.protocol), err
}

func (r *Resolver) Protocol(ctx context.Context, args idArgs) (*protocolResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Protocols.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.protocol(p), nil
}

func (r *Resolver) CreateProtocol(ctx context.Context, args struct{ Input protocolInput }) (*protocolResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Protocols.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.protocol(p), nil
}

func (r *Resolver) UpdateProtocol(ctx context.Context, args struct {
	ID    graphql.ID
	Input protocolInput
}) (*protocolResolver, error) {
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
	p, err := r.svc.Protocols.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.protocol(p), nil
}

func (r *Resolver) DeleteProtocol(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Protocols.Delete)
}
