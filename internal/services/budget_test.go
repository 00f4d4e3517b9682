package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

func TestNewBudget(t *testing.T) {
	assert.Equal(t, Budget{Budget: 100, Spent: 30, Remaining: 70}, NewBudget(100, 30))
	assert.Equal(t, -20.0, NewBudget(10, 30).Remaining)
}

type BudgetTestSuite struct {
	ServiceTestSuite
}

func TestBudgetTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetTestSuite))
}

func (s *BudgetTestSuite) expense(amount float64, projectID, grantID *uint) *models.Expense {
	e, err := s.svc.Expenses.Create(s.ctx, ExpenseInput{
		Description: ptr("reagents"),
		Amount:      &amount,
		Category:    ptr(models.ExpenseCategorySupplies),
		ProjectID:   projectID,
		GrantID:     grantID,
	})
	s.Require().NoError(err)
	return e
}

func (s *BudgetTestSuite) TestRollUp() {
	p := s.project(1000)
	g := s.grant(5000)

	s.expense(250, &p.ID, &g.ID)
	s.expense(100, &p.ID, nil)
	s.expense(40, nil, &g.ID)

	pb, err := s.svc.Projects.Budget(s.ctx, p)
	s.Require().NoError(err)
	s.Equal(NewBudget(1000, 350), pb)

	gb, err := s.svc.Grants.Budget(s.ctx, g)
	s.Require().NoError(err)
	s.Equal(NewBudget(5000, 290), gb)
}

func (s *BudgetTestSuite) TestExpenseDefaultsDate() {
	e := s.expense(10, nil, nil)
	s.True(e.Date.Equal(testNow))
}

func (s *BudgetTestSuite) TestExpenseValidation() {
	for _, amount := range []float64{0, -5} {
		_, err := s.svc.Expenses.Create(s.ctx, ExpenseInput{
			Description: ptr("bad"),
			Amount:      ptr(amount),
			Category:    ptr(models.ExpenseCategoryOther),
		})
		s.ErrorIs(err, domain.ErrValidation, "amount %v", amount)
	}

	_, err := s.svc.Expenses.Create(s.ctx, ExpenseInput{
		Description: ptr("unknown grant"),
		Amount:      ptr(1.0),
		Category:    ptr(models.ExpenseCategoryOther),
		GrantID:     ptr(uint(42)),
	})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *BudgetTestSuite) TestGrantDeleteKeepsExpenses() {
	p := s.project(100)
	g := s.grant(100)
	e := s.expense(25, &p.ID, &g.ID)

	s.Require().NoError(s.svc.Grants.Delete(s.ctx, g.ID))

	e, err := s.svc.Expenses.Get(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Nil(e.GrantID)

	pb, err := s.svc.Projects.Budget(s.ctx, p)
	s.Require().NoError(err)
	s.Equal(25.0, pb.Spent)
}

func (s *BudgetTestSuite) TestDashboard() {
	g := s.grant(1000)
	s.expense(200, nil, &g.ID)
	s.expense(50, nil, nil)
	s.member()
	s.equipment(EquipmentInput{})

	sum, err := s.svc.Dashboard.Summary(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), sum.Members)
	s.Equal(int64(1), sum.ActiveMembers)
	s.Equal(int64(1), sum.AvailableEquipment)
	s.Equal(NewBudget(1000, 200), sum.Grants)
}
