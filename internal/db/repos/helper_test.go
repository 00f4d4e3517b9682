package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/dbtest"
	"github.com/labtrack/labtrack/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	ctx   context.Context
	store *Store
	seq   int
}

func (s *DBRepositoryTestSuite) SetupTest() {
	s.db = dbtest.Open(s.T())
	s.store = NewStore(s.db)
	s.ctx = context.Background()
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) next() int {
	s.seq++
	return s.seq
}

func (s *DBRepositoryTestSuite) createMember() *models.Member {
	n := s.next()
	member := &models.Member{
		Name:   fmt.Sprintf("Member %d", n),
		Email:  fmt.Sprintf("member%d@lab.example", n),
		Role:   models.MemberRolePhDStudent,
		Status: models.MemberStatusActive,
	}
	s.Require().NoError(s.store.Members.Create(s.ctx, member))
	return member
}

func (s *DBRepositoryTestSuite) createProject() *models.Project {
	project := &models.Project{
		Title:  fmt.Sprintf("Project %d", s.next()),
		Status: models.ProjectStatusActive,
		Budget: 1000,
	}
	s.Require().NoError(s.store.Projects.Create(s.ctx, project))
	return project
}

func (s *DBRepositoryTestSuite) createGrant() *models.Grant {
	grant := &models.Grant{
		Title:  fmt.Sprintf("Grant %d", s.next()),
		Agency: "NSF",
		Budget: 5000,
		Status: models.GrantStatusActive,
	}
	s.Require().NoError(s.store.Grants.Create(s.ctx, grant))
	return grant
}

func (s *DBRepositoryTestSuite) createEquipment(mutators ...func(*models.Equipment)) *models.Equipment {
	equipment := &models.Equipment{
		Name:   fmt.Sprintf("Microscope %d", s.next()),
		Status: models.EquipmentStatusAvailable,
	}
	for _, m := range mutators {
		m(equipment)
	}
	s.Require().NoError(s.store.Equipment.Create(s.ctx, equipment))
	return equipment
}

func (s *DBRepositoryTestSuite) createExpense(amount float64, projectID, grantID *uint) *models.Expense {
	expense := &models.Expense{
		Description: fmt.Sprintf("Expense %d", s.next()),
		Amount:      amount,
		Category:    models.ExpenseCategorySupplies,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ProjectID:   projectID,
		GrantID:     grantID,
	}
	s.Require().NoError(s.store.Expenses.Create(s.ctx, expense))
	return expense
}

func (s *DBRepositoryTestSuite) createBooking(equipmentID, memberID uint, start, end time.Time) *models.Booking {
	booking := &models.Booking{
		EquipmentID: equipmentID,
		MemberID:    memberID,
		StartTime:   start,
		EndTime:     end,
	}
	s.Require().NoError(s.store.Bookings.Create(s.ctx, booking))
	return booking
}

func hour(h int) time.Time {
	return time.Date(2024, 6, 1, h, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}
