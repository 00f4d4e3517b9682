package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

type MemberRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestMemberRepository(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}

func (s *MemberRepositoryTestSuite) TestDuplicateEmail() {
	member := s.createMember()

	taken, err := s.store.Members.EmailTaken(s.ctx, member.Email, 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = s.store.Members.EmailTaken(s.ctx, member.Email, member.ID)
	s.Require().NoError(err)
	s.False(taken, "a member does not conflict with itself")

	err = s.store.Members.Create(s.ctx, &models.Member{
		Name: "Copy", Email: member.Email, Role: models.MemberRoleOther, Status: models.MemberStatusActive,
	})
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *MemberRepositoryTestSuite) TestDeleteCascadesAndDetaches() {
	member := s.createMember()
	project := s.createProject()
	equipment := s.createEquipment(func(e *models.Equipment) {
		e.MemberID = &member.ID
		e.Status = models.EquipmentStatusInUse
	})
	other := s.createEquipment()
	s.createBooking(other.ID, member.ID, hour(9), hour(10))
	s.Require().NoError(s.store.AcademicInfo.Create(s.ctx, &models.AcademicInfo{
		MemberID: member.ID, Degree: "PhD", Institution: "MIT",
	}))
	s.Require().NoError(s.store.NoteTasks.Create(s.ctx, &models.NoteTask{
		Title: "Read paper", Kind: models.NoteKindTask, Priority: models.PriorityLow, MemberID: &member.ID,
	}))
	doc := &models.Document{Title: "Thesis", Type: models.DocumentTypeReport, MemberID: &member.ID}
	s.Require().NoError(s.store.Documents.Create(s.ctx, doc))
	protocol := &models.Protocol{Title: "PCR", Version: models.DefaultProtocolVersion, AuthorID: &member.ID}
	s.Require().NoError(s.store.Protocols.Create(s.ctx, protocol))
	s.Require().NoError(s.store.Projects.AddMember(s.ctx, project, member.ID))

	s.Require().NoError(s.store.Members.Delete(s.ctx, member.ID))

	for _, model := range []interface{}{&models.Booking{}, &models.AcademicInfo{}, &models.NoteTask{}} {
		var count int64
		s.Require().NoError(s.db.Model(model).Count(&count).Error)
		s.Zero(count, "%T should cascade", model)
	}

	released, err := s.store.Equipment.Get(s.ctx, equipment.ID)
	s.Require().NoError(err)
	s.Nil(released.MemberID)
	s.Equal(models.EquipmentStatusAvailable, released.Status)

	foundDoc, err := s.store.Documents.Get(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.Nil(foundDoc.MemberID)

	foundProtocol, err := s.store.Protocols.Get(s.ctx, protocol.ID)
	s.Require().NoError(err)
	s.Nil(foundProtocol.AuthorID)

	members, err := s.store.Projects.Members(s.ctx, project)
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *MemberRepositoryTestSuite) TestFilterByProject() {
	project := s.createProject()
	inProject := s.createMember()
	s.createMember()
	s.Require().NoError(s.store.Projects.ReplaceMembers(s.ctx, project, []uint{inProject.ID}))

	members, err := s.store.Members.List(s.ctx, MemberFilter{ProjectID: &project.ID}, nil)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(inProject.ID, members[0].ID)

	projects, err := s.store.Members.Projects(s.ctx, inProject)
	s.Require().NoError(err)
	s.Require().Len(projects, 1)
	s.Equal(project.ID, projects[0].ID)
}
