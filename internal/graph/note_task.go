package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type noteTaskResolver struct {
	base
	r *Resolver
	n *models.NoteTask
}

func (r *Resolver) noteTask(n *models.NoteTask) *noteTaskResolver {
	return &noteTaskResolver{base: base{n.Base}, r: r, n: n}
}

func (x *noteTaskResolver) Title() string { return x.n.Title }
func (x *noteTaskResolver) Content() *string { return x.n.Content }
func (x *noteTaskResolver) Kind() string { return string(x.n.Kind) }
func (x *noteTaskResolver) Priority() string { return string(x.n.Priority) }
func (x *noteTaskResolver) Completed() bool { return x.n.Completed }
func (x *noteTaskResolver) DueDate() *graphql.Time { return gqlTimePtr(x.n.DueDate) }

func (x *noteTaskResolver) Member(ctx context.Context) (*memberResolver, error) {
	return x.r.memberByID(ctx, x.n.MemberID)
}

func (x *noteTaskResolver) Project(ctx context.Context) (*projectResolver, error) {
	return x.r.projectByID(ctx, x.n.ProjectID)
}

type noteTaskInput struct {
	Title     *string
	Content   *string
	Kind      *string
	Priority  *string
	Completed *bool
	DueDate   *graphql.Time
	MemberID  *graphql.ID
	ProjectID *graphql.ID
}

func (in noteTaskInput) service() (services.NoteTaskInput, error) {
	var p idParser
	out := services.NoteTaskInput{
		Title:     in.Title,
		Content:   in.Content,
		Kind:      enum[models.NoteKind](in.Kind),
		Priority:  enum[models.Priority](in.Priority),
		Completed: in.Completed,
		DueDate:   fromTime(in.DueDate),
		MemberID:  p.one(in.MemberID),
		ProjectID: p.one(in.ProjectID),
	}
	return out, p.err
}

// NoteTasks lists notes and tasks
func (r *Resolver) NoteTasks(ctx context.Context, args struct {
	PageArgs
	Kind      *string
	Priority  *string
	Completed *bool
	MemberID  *graphql.ID
	ProjectID *graphql.ID
}) ([]*noteTaskResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.NoteTaskFilter{
		Kind:      enum[models.NoteKind](args.Kind),
		Priority:  enum[models.Priority](args.Priority),
		Completed: args.Completed,
		MemberID:  p.one(args.MemberID),
		ProjectID: p.one(args.ProjectID),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.NoteTasks.List(ctx, f, args.options())
	return wrapAll(items, r.noteTask), err
}

func (r *Resolver) NoteTask(ctx context.Context, args idArgs) (*noteTaskResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	n, err := r.svc.NoteTasks.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.noteTask(n), nil
}

func (r *Resolver) CreateNoteTask(ctx context.Context, args struct{ Input noteTaskInput }) (*noteTaskResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	n, err := r.svc.NoteTasks.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.noteTask(n), nil
}

func (r *Resolver) UpdateNoteTask(ctx context.Context, args struct {
	ID    graphql.ID
	Input noteTaskInput
}) (*noteTaskResolver, error) {
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
	n, err := r.svc.NoteTasks.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.noteTask(n), nil
}

func (r *Resolver) DeleteNoteTask(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.NoteTasks.Delete)
}

// ToggleNoteTask flips the completed flag
func (r *Resolver) ToggleNoteTask(ctx context.Context, args idArgs) (*noteTaskResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	n, err := r.svc.NoteTasks.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.noteTask(n), nil
}
