package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// ExpenseFilter narrows expense listings
type ExpenseFilter struct {
	Category  *models.ExpenseCategory
	ProjectID *uint
	GrantID   *uint
	From      *time.Time
	To        *time.Time
}

func (f ExpenseFilter) scopes() []Scope {
	return []Scope{
		eq("category", f.Category),
		eq("project_id", f.ProjectID),
		eq("grant_id", f.GrantID),
		window("date", "date", f.From, f.To),
	}
}

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	Repository[models.Expense]
}

// NewExpenseRepository creates a new instance of ExpenseRepository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{newRepository[models.Expense](db, "expense", "description")}
}

// List retrieves expenses matching the filter, newest first
func (r *ExpenseRepository) List(ctx context.Context, f ExpenseFilter, opts *models.ListOptions) ([]models.Expense, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// SumByProject adds up the amounts of every expense charged to a project
func (r *ExpenseRepository) SumByProject(ctx context.Context, projectID uint) (float64, error) {
	return r.sumWhere(ctx, "project_id = ?", projectID)
}

// SumByGrant adds up the amounts of every expense charged to a grant
func (r *ExpenseRepository) SumByGrant(ctx context.Context, grantID uint) (float64, error) {
	return r.sumWhere(ctx, "grant_id = ?", grantID)
}

// SumGranted adds up the amounts of every expense charged to any grant
func (r *ExpenseRepository) SumGranted(ctx context.Context) (float64, error) {
	return r.sumWhere(ctx, "grant_id IS NOT NULL")
}

func (r *ExpenseRepository) sumWhere(ctx context.Context, query string, args ...interface{}) (float64, error) {
	return total(r.db.WithContext(ctx).Model(&models.Expense{}).Where(query, args...), "amount")
}

// total sums column over the rows selected by q; no rows sum to zero
func total(q *gorm.DB, column string) (float64, error) {
	var sum float64
	err := q.Select("COALESCE(SUM(" + column + "), 0)").Scan(&sum).Error
	return sum, err
}
