package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
)

type ProjectRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestProjectRepository(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}

func (s *ProjectRepositoryTestSuite) TestReplaceMembers() {
	project := s.createProject()
	a := s.createMember()
	b := s.createMember()

	s.Require().NoError(s.store.Projects.ReplaceMembers(s.ctx, project, []uint{a.ID, b.ID}))
	members, err := s.store.Projects.Members(s.ctx, project)
	s.Require().NoError(err)
	s.Len(members, 2)

	s.Require().NoError(s.store.Projects.ReplaceMembers(s.ctx, project, []uint{b.ID}))
	members, err = s.store.Projects.Members(s.ctx, project)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(b.ID, members[0].ID)
	s.Equal(b.Email, members[0].Email, "replace must not overwrite the linked member")

	s.Require().NoError(s.store.Projects.ReplaceMembers(s.ctx, project, nil))
	members, err = s.store.Projects.Members(s.ctx, project)
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *ProjectRepositoryTestSuite) TestAddAndRemoveMember() {
	project := s.createProject()
	member := s.createMember()

	s.Require().NoError(s.store.Projects.AddMember(s.ctx, project, member.ID))
	s.Require().NoError(s.store.Projects.AddMember(s.ctx, project, member.ID))
	members, err := s.store.Projects.Members(s.ctx, project)
	s.Require().NoError(err)
	s.Len(members, 1)

	s.Require().NoError(s.store.Projects.RemoveMember(s.ctx, project, member.ID))
	members, err = s.store.Projects.Members(s.ctx, project)
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *ProjectRepositoryTestSuite) TestFilterByGrant() {
	project := s.createProject()
	s.createProject()
	grant := s.createGrant()
	s.Require().NoError(s.store.Projects.LinkGrant(s.ctx, project, grant.ID))

	projects, err := s.store.Projects.List(s.ctx, ProjectFilter{GrantID: &grant.ID}, nil)
	s.Require().NoError(err)
	s.Require().Len(projects, 1)
	s.Equal(project.ID, projects[0].ID)

	grants, err := s.store.Grants.List(s.ctx, GrantFilter{ProjectID: &project.ID}, nil)
	s.Require().NoError(err)
	s.Require().Len(grants, 1)
	s.Equal(grant.ID, grants[0].ID)

	s.Require().NoError(s.store.Projects.UnlinkGrant(s.ctx, project, grant.ID))
	linked, err := s.store.Projects.Grants(s.ctx, project)
	s.Require().NoError(err)
	s.Empty(linked)
}

func (s *ProjectRepositoryTestSuite) TestDeleteSetsNull() {
	project := s.createProject()
	member := s.createMember()
	grant := s.createGrant()
	expense := s.createExpense(100, &project.ID, &grant.ID)
	equipment := s.createEquipment(func(e *models.Equipment) {
		e.ProjectID = &project.ID
		e.Status = models.EquipmentStatusInUse
	})
	event := &models.Event{Title: "Kickoff", Type: models.EventTypeMeeting, StartTime: hour(9), ProjectID: &project.ID}
	s.Require().NoError(s.store.Events.Create(s.ctx, event))
	s.Require().NoError(s.store.Projects.ReplaceMembers(s.ctx, project, []uint{member.ID}))
	s.Require().NoError(s.store.Projects.ReplaceGrants(s.ctx, project, []uint{grant.ID}))

	s.Require().NoError(s.store.Projects.Delete(s.ctx, project.ID))

	foundExpense, err := s.store.Expenses.Get(s.ctx, expense.ID)
	s.Require().NoError(err)
	s.Nil(foundExpense.ProjectID)
	s.Require().NotNil(foundExpense.GrantID)

	foundEquipment, err := s.store.Equipment.Get(s.ctx, equipment.ID)
	s.Require().NoError(err)
	s.Nil(foundEquipment.ProjectID)
	s.Equal(models.EquipmentStatusAvailable, foundEquipment.Status)

	foundEvent, err := s.store.Events.Get(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Nil(foundEvent.ProjectID)

	projects, err := s.store.Grants.Projects(s.ctx, grant)
	s.Require().NoError(err)
	s.Empty(projects)

	_, err = s.store.Members.Get(s.ctx, member.ID)
	s.NoError(err, "members survive project deletion")
}
