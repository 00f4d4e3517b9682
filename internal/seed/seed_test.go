package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/dbtest"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/services"
)

type SeedTestSuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB
	svc *services.Services
}

func (s *SeedTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = dbtest.Open(s.T())
	s.svc = services.New(s.db, services.Options{})
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) load() Counts {
	f, err := Default()
	s.Require().NoError(err)
	counts, err := Load(s.ctx, s.db, f)
	s.Require().NoError(err)
	return counts
}

func (s *SeedTestSuite) TestDefaultFixtures() {
	counts := s.load()
	s.Equal(Counts{
		"members":       4,
		"projects":      2,
		"grants":        2,
		"expenses":      3,
		"equipment":     4,
		"bookings":      2,
		"events":        2,
		"collaborators": 1,
		"publications":  2,
		"protocols":     1,
		"note tasks":    2,
		"academic info": 2,
	}, counts)

	summary, err := s.svc.Dashboard.Summary(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), summary.Members)
	s.Equal(int64(1), summary.AvailableEquipment)
	s.Equal(int64(2), summary.InUseEquipment)
	s.Equal(int64(1), summary.MaintenanceEquipment)
	s.Equal(int64(1), summary.OpenTasks)
}

func (s *SeedTestSuite) TestRelationsResolved() {
	s.load()

	active := models.ProjectStatusActive
	projects, err := s.svc.Projects.List(s.ctx, repos.ProjectFilter{Status: &active}, nil)
	s.Require().NoError(err)
	s.Require().Len(projects, 1)

	folding := &projects[0]
	members, err := s.svc.Projects.Members(s.ctx, folding)
	s.Require().NoError(err)
	s.Len(members, 3)

	budget, err := s.svc.Projects.Budget(s.ctx, folding)
	s.Require().NoError(err)
	s.InDelta(250000.0, budget.Budget, 0.001)
	s.InDelta(22635.5, budget.Spent, 0.001)
	s.InDelta(227364.5, budget.Remaining, 0.001)

	grants, err := s.svc.Projects.Grants(s.ctx, folding)
	s.Require().NoError(err)
	s.Require().Len(grants, 1)
	s.Equal("European Research Council", grants[0].Agency)
}

func (s *SeedTestSuite) TestUnknownKeyRollsBack() {
	f, err := Parse([]byte(`
members:
  - key: ada
    name: Ada
    email: ada@lab.example
    role: PROFESSOR
projects:
  - title: Orphan
    members: [nobody]
`))
	s.Require().NoError(err)

	_, err = Load(s.ctx, s.db, f)
	s.Require().Error(err)
	s.Contains(err.Error(), `unknown member "nobody"`)

	members, err := s.svc.Members.List(s.ctx, repos.MemberFilter{}, nil)
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *SeedTestSuite) TestResetKeepsUsers() {
	s.load()
	_, err := s.svc.Users.SignUp(s.ctx, services.SignUpInput{
		Email:    "pi@lab.example",
		Password: "correct horse battery",
	})
	s.Require().NoError(err)

	s.Require().NoError(Reset(s.ctx, s.db))

	summary, err := s.svc.Dashboard.Summary(s.ctx)
	s.Require().NoError(err)
	s.Zero(summary.Members)
	s.Zero(summary.Equipment)
	s.Zero(summary.Projects)

	users, err := s.svc.Users.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(users, 1)

	// the same fixtures load again once the tables are empty
	s.load()
}

func (s *SeedTestSuite) TestParseRejectsMalformedYAML() {
	_, err := Parse([]byte("members: ["))
	s.Error(err)
}
