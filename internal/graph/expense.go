package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type expenseResolver struct {
	base
	r *Resolver
	e *models.Expense
}

func (r *Resolver) expense(e *models.Expense) *expenseResolver {
	return &expenseResolver{base: base{e.Base}, r: r, e: e}
}

func (x *expenseResolver) Description() string { return x.e.Description }
func (x *expenseResolver) Amount() float64 { return x.e.Amount }
func (x *expenseResolver) Category() string { return string(x.e.Category) }
func (x *expenseResolver) Date() graphql.Time { return gqlTime(x.e.Date) }

func (x *expenseResolver) Project(ctx context.Context) (*projectResolver, error) {
	return x.r.projectByID(ctx, x.e.ProjectID)
}

func (x *expenseResolver) Grant(ctx context.Context) (*grantResolver, error) {
	return x.r.grantByID(ctx, x.e.GrantID)
}

type expenseInput struct {
	Description *string
	Amount      *float64
	Category    *string
	Date        *graphql.Time
	ProjectID   *graphql.ID
	GrantID     *graphql.ID
}

func (in expenseInput) service() (services.ExpenseInput, error) {
	var p idParser
	out := services.ExpenseInput{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    enum[models.ExpenseCategory](in.Category),
		Date:        fromTime(in.Date),
		ProjectID:   p.one(in.ProjectID),
		GrantID:     p.one(in.GrantID),
	}
	return out, p.err
}

// Expenses lists expenses
func (r *Resolver) Expenses(ctx context.Context, args struct {
	PageArgs
	Category  *string
	ProjectID *graphql.ID
	GrantID   *graphql.ID
	From      *graphql.Time
	To        *graphql.Time
}) ([]*expenseResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	var p idParser
	f := repos.ExpenseFilter{
		Category:  enum[models.ExpenseCategory](args.Category),
		ProjectID: p.one(args.ProjectID),
		GrantID:   p.one(args.GrantID),
		From:      fromTime(args.From),
		To:        fromTime(args.To),
	}
	if p.err != nil {
		return nil, p.err
	}
	items, err := r.svc.Expenses.List(ctx, f, args.options())
	return wrapAll(items, r.expense), err
}

// Expense returns an expense or null
func (r *Resolver) Expense(ctx context.Context, args idArgs) (*expenseResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Expenses.Get(ctx, id)
	if err != nil {
		return nil, orNil(err)
	}
	return r.expense(e), nil
}

// CreateExpense records an expense
func (r *Resolver) CreateExpense(ctx context.Context, args struct{ Input expenseInput }) (*expenseResolver, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	in, err := args.Input.service()
	if err != nil {
		return nil, err
	}
	e, err := r.svc.Expenses.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.expense(e), nil
}

// UpdateExpense edits an expense
func (r *Resolver) UpdateExpense(ctx context.Context, args struct {
	ID    graphql.ID
	Input expenseInput
}) (*expenseResolver, error) {
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
	e, err := r.svc.Expenses.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return r.expense(e), nil
}

// DeleteExpense removes an expense
func (r *Resolver) DeleteExpense(ctx context.Context, args idArgs) (bool, error) {
	return r.delete(ctx, args.ID, r.svc.Expenses.Delete)
}
