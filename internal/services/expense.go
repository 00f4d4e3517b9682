package services

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
)

// ExpenseInput carries the fields of a create or update
type ExpenseInput struct {
	Description *string
	Amount      *float64
	Category    *models.ExpenseCategory
	Date        *time.Time
	ProjectID   *uint
	GrantID     *uint
}

func (in ExpenseInput) apply(e *models.Expense) {
	setTrimmed(&e.Description, in.Description)
	set(&e.Amount, in.Amount)
	set(&e.Category, in.Category)
	if in.Date != nil {
		e.Date = utc(*in.Date)
	}
	setRef(&e.ProjectID, in.ProjectID)
	setRef(&e.GrantID, in.GrantID)
}

func validateExpense(e *models.Expense) error {
	return validate(validation.ValidateStruct(e,
		validation.Field(&e.Description, validation.Required, validation.Length(1, 500)),
		validation.Field(&e.Amount, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&e.Category, validation.Required, oneOf(models.ExpenseCategories)),
		validation.Field(&e.Date, validation.Required),
	))
}

// Expense handles expense-related operations
type Expense struct {
	store *repos.Store
	now   func() time.Time
}

// NewExpenseService creates a new expense service instance
func NewExpenseService(store *repos.Store, now func() time.Time) *Expense {
	return &Expense{store: store, now: now}
}

// Create records a new expense, dated now unless a date is given
func (s *Expense) Create(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	e := &models.Expense{Category: models.ExpenseCategoryOther, Date: s.now().UTC()}
	in.apply(e)
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	if err := s.requireRefs(ctx, e); err != nil {
		return nil, err
	}
	if err := s.store.Expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies in to an existing expense
func (s *Expense) Update(ctx context.Context, id uint, in ExpenseInput) (*models.Expense, error) {
	e, err := s.store.Expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	if err := s.requireRefs(ctx, e); err != nil {
		return nil, err
	}
	if err := s.store.Expenses.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Expense) requireRefs(ctx context.Context, e *models.Expense) error {
	if err := s.store.Projects.RequireIDs(ctx, optional(e.ProjectID)...); err != nil {
		return err
	}
	return s.store.Grants.RequireIDs(ctx, optional(e.GrantID)...)
}

// Get retrieves an expense by ID
func (s *Expense) Get(ctx context.Context, id uint) (*models.Expense, error) {
	return s.store.Expenses.Get(ctx, id)
}

// List retrieves expenses matching the filter
func (s *Expense) List(ctx context.Context, f repos.ExpenseFilter, opts *models.ListOptions) ([]models.Expense, error) {
	return s.store.Expenses.List(ctx, f, opts)
}

// Delete deletes an expense
func (s *Expense) Delete(ctx context.Context, id uint) error {
	return s.store.Expenses.Delete(ctx, id)
}
