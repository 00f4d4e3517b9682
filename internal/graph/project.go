package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type projectResolver struct {
	base
	r *Resolver
	p *models.Project
}

func (r *Resolver) project(p *models.Project) *projectResolver {
	return &projectResolver{base: base{p.Base}, r: r, p: p}
}

func (r *Resolver) projectByID(ctx context.Context, id *uint) (*projectResolver, error) {
	if id == nil {
		return nil, nil
	}
	p, err := r.svc.Projects.Get(ctx, *id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.project(p), nil
}

func (x *projectResolver) Title() string { return x.p.Title }
func (x *projectResolver) Description() *string { return x.p.Description }
func (x *projectResolver) Status() string { return string(x.p.Status) }
func (x *projectResolver) StartDate() *graphql.Time { return gqlTimePtr(x.p.StartDate) }
func (x *projectResolver) EndDate() *graphql.Time { return gqlTimePtr(x.p.EndDate) }
func (x *projectResolver) Budget() float64 { return x.p.Budget }

func (x *projectResolver) Spent(ctx context.Context) (float64, error) {
	b, err := x.r.svc.Projects.Budget(ctx, x.p)
	return b.Spent, err
}

func (x *projectResolver) Remaining(ctx context.Context) (float64, error) {
	b, err := x.r.svc.Projects.Budget(ctx, x.p)
	return b.Remaining, err
}

func (x *projectResolver) Members(ctx context.Context) ([]*memberResolver, error) {
	items, err := x.r.svc.Projects.Members(ctx, x.p)
	return wrapAll(items, x.r.member), err
}

func (x *projectResolver) Grants(ctx context.Context) ([]*grantResolver, error) {
	items, err := x.r.svc.Projects.Grants(ctx, x.p)
	return wrapAll(items, x.r.grant), err
}

func (x *projectResolver) Expenses(ctx context.Context, args RelationArgs) ([]*expenseResolver, error) {
	items, err := x.r.svc.Expenses.List(ctx, repos.ExpenseFilter{ProjectID: &x.p.ID}, args.options())
	return wrapAll(items, x.r.expense), err
}

func (x *projectResolver) Equipment(ctx context.Context, args RelationArgs) ([]*equipmentResolver, error) {
	items, err := x.r.svc.Equipment.List(ctx, repos.EquipmentFilter{ProjectID: &x.p.ID}, args.options())
	return wrapAll(items, x.r.equipment), err
}

func (x *projectResolver) Bookings(ctx context.Context, args RelationArgs) ([]*bookingResolver, error) {
	items, err := x.r.svc.Bookings.List(ctx, repos.BookingFilter{ProjectID: &x.p.ID}, args.options())
	return wrapAll(items, x.r.booking), err
}

func (x *projectResolver) Events(ctx context.Context, args RelationArgs) ([]*eventResolver, error) {
	items, err := x.r.svc.Events.List(ctx, repos.EventFilter{ProjectID: &x.p.ID}, args.options())
	return wrapAll(items, x.r.event), err
}

func (x *projectResolver) Publications(ctx context.Context) ([]*publicationResolver, error) {
	items, err := x.r.svc.Projects.Publications(ctx, x.p)
	return wrapAll(items, x.r.publication), err
}

func (x *projectResolver) Collaborators(ctx context.Context) ([]*collaboratorResolver, error) {
	items, err := x.r.svc.Projects.Collaborators(ctx, x.p)
	return wrapAll(items, x.r.collaborator), err
}

func (x *projectResolver) Documents(ctx context.Context, args RelationArgs) ([]*documentResolver, error) {
	items, err := x.r.svc.Documents.List(ctx, repos.DocumentFilter{ProjectID: &x.p.ID}, args.options())
	return wrapAll(items, x.r.document), err
}

func (x *projectResolver) NoteTasks(ctx context.Context, args RelationArgs) ([]*noteTaskResolver, error) {
	items, err := x.r.svc.NoteTasks.List(ctx, repos.NoteTaskFilter{ProjectID: &x.p.ID}, args.options())
	return wrapAll(items, x.r.noteTask), err
}

func (x *projectResolver) Protocols(ctx context.Context) ([]*protocolResolver, error) {
	items, err := x.r.svc.Projects.Protocols(ctx, x.p)
	return wrapAll(items, x.r.protocol), err
}

type projectInput struct {
	Title       *string
	Description *string
	Status      *string
	StartDate   *graphql.Time
	EndDate     *graphql.Time
	Budget      *float64
	MemberIDs   *[]graphql.ID
	GrantIDs    *[]graphql.ID
}

func (in projectInput) service() (services.ProjectInput, error) {
	var p idParser
	out := services.ProjectInput{
		Title:       in.Title,
		Description: in.Description,
		Status:      enum[models.ProjectStatus](in.Status),
		StartDate:   fromTime(in.StartDate),
		EndDate:     fromTime(in.EndDate),
		Budget:      in.Budget,
		MemberIDs:   p.many(in.MemberIDs),
		GrantIDs:    p.many(in.GrantIDs),
	}
	return out, p.err
}

// Projects lists projects
func (r *Resolver) Projects(ctx context.Context, args struct {
	PageArgs
	Status   *string
	MemberID *graphql.ID
	GrantID  *graphql.ID
}) ([]*projectResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.ProjectFilter{
		Status:   enum[models.ProjectStatus](args.Status),
		MemberID: p.one(args.MemberID),
		GrantID:  p.one(args.GrantID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Projects.List(ctx, f, args.options())
	return wrapAll(items, r.project), err
}

// Project returns a project or null
func (r *Resolver) Project(ctx context.Context, args idArgs) (*projectResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	return r.projectByID(ctx, &id)
}

// CreateProject adds a project
func (r *Resolver) CreateProject(ctx context.Context, args struct{ Input projectInput }) (*projectResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	p, err := r.svc.Projects.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.project(p), nil
}

// UpdateProject edits a project
func (r *Resolver) UpdateProject(ctx context.Context, args struct {
	ID    graphql.ID
	Input projectInput
}) (*projectResolver, error) {
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
	p, err := r.svc.Projects.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.project(p), nil
}

// DeleteProject removes a project
func (r *Resolver) DeleteProject(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Projects.Delete)
}

type projectMemberArgs struct {
	ProjectID graphql.ID
	MemberID  graphql.ID
}

type projectGrantArgs struct {
	ProjectID graphql.ID
	GrantID   graphql.ID
}

// AddProjectMember links a member to a project
func (r *Resolver) AddProjectMember(ctx context.Context, args projectMemberArgs) (*projectResolver, error) {
	return r.link(ctx, args.ProjectID, args.MemberID, r.svc.Projects.AddMember)
}

// RemoveProjectMember unlinks a member from a project
func (r *Resolver) RemoveProjectMember(ctx context.Context, args projectMemberArgs) (*projectResolver, error) {
	return r.link(ctx, args.ProjectID, args.MemberID, r.svc.Projects.RemoveMember)
}

// LinkProjectGrant funds a project from a grant
func (r *Resolver) LinkProjectGrant(ctx context.Context, args projectGrantArgs) (*projectResolver, error) {
	return r.link(ctx, args.ProjectID, args.GrantID, r.svc.Projects.LinkGrant)
}

// UnlinkProjectGrant removes a grant from a project
func (r *Resolver) UnlinkProjectGrant(ctx context.Context, args projectGrantArgs) (*projectResolver, error) {
	return r.link(ctx, args.ProjectID, args.GrantID, r.svc.Projects.UnlinkGrant)
}

func (r *Resolver) link(ctx context.Context, projectID, otherID graphql.ID,
	fn func(context.Context, uint, uint) (*models.Project, error)) (*projectResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	pid, err := parseID(projectID)
	if err != nil {
		return nil, err
	}
	oid, err := parseID(otherID)
	if err != nil {
		return nil, err
	}
	p, err := fn(ctx, pid, oid)
	if err != nil {
		return nil, err
	}
	return r.project(p), nil
}
