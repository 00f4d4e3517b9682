package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
)

type RecordServiceTestSuite struct {
	ServiceTestSuite
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}

func (s *RecordServiceTestSuite) TestPublicationDOIConflict() {
	author := s.member()
	p, err := s.svc.Publications.Create(s.ctx, PublicationInput{
		Title:     ptr("Folding at scale"),
		DOI:       ptr("10.1000/XYZ123"),
		AuthorIDs: &[]uint{author.ID},
	})
	s.Require().NoError(err)
	s.Equal(models.PublicationStatusDraft, p.Status)

	authors, err := s.svc.Publications.Authors(s.ctx, p)
	s.Require().NoError(err)
	s.Len(authors, 1)

	_, err = s.svc.Publications.Create(s.ctx, PublicationInput{
		Title: ptr("Copy"),
		DOI:   ptr("10.1000/xyz123"),
	})
	s.ErrorIs(err, domain.ErrConflict)

	_, err = s.svc.Publications.Create(s.ctx, PublicationInput{
		Title:     ptr("Ghost author"),
		AuthorIDs: &[]uint{9999},
	})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RecordServiceTestSuite) TestNoteTaskToggle() {
	m := s.member()
	n, err := s.svc.NoteTasks.Create(s.ctx, NoteTaskInput{
		Title:    ptr("Order pipette tips"),
		Kind:     ptr(models.NoteKindTask),
		MemberID: &m.ID,
	})
	s.Require().NoError(err)
	s.False(n.Completed)
	s.Equal(models.PriorityMedium, n.Priority)

	n, err = s.svc.NoteTasks.Toggle(s.ctx, n.ID)
	s.Require().NoError(err)
	s.True(n.Completed)

	open := false
	tasks, err := s.svc.NoteTasks.List(s.ctx, repos.NoteTaskFilter{Completed: &open}, nil)
	s.Require().NoError(err)
	s.Empty(tasks)

	_, err = s.svc.NoteTasks.Toggle(s.ctx, 9999)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RecordServiceTestSuite) TestEventAttendees() {
	a, b := s.member(), s.member()
	e, err := s.svc.Events.Create(s.ctx, EventInput{
		Title:       ptr("Group meeting"),
		StartTime:   at(2),
		AttendeeIDs: &[]uint{a.ID},
	})
	s.Require().NoError(err)
	s.Equal(models.EventTypeMeeting, e.Type)

	_, err = s.svc.Events.AddAttendee(s.ctx, e.ID, b.ID)
	s.Require().NoError(err)
	attendees, err := s.svc.Events.Attendees(s.ctx, e)
	s.Require().NoError(err)
	s.Len(attendees, 2)

	_, err = s.svc.Events.RemoveAttendee(s.ctx, e.ID, a.ID)
	s.Require().NoError(err)
	attendees, err = s.svc.Events.Attendees(s.ctx, e)
	s.Require().NoError(err)
	s.Require().Len(attendees, 1)
	s.Equal(b.ID, attendees[0].ID)

	_, err = s.svc.Events.AddAttendee(s.ctx, e.ID, 9999)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.svc.Events.Create(s.ctx, EventInput{
		Title:     ptr("Backwards"),
		StartTime: at(5),
		EndTime:   at(4),
	})
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *RecordServiceTestSuite) TestMemberDeleteDetachesRecords() {
	m := s.member()
	p, err := s.svc.Protocols.Create(s.ctx, ProtocolInput{
		Title:    ptr("Cryo-EM grid prep"),
		AuthorID: &m.ID,
	})
	s.Require().NoError(err)
	s.Equal(models.DefaultProtocolVersion, p.Version)

	_, err = s.svc.AcademicInfo.Create(s.ctx, AcademicInfoInput{
		MemberID:    &m.ID,
		Degree:      ptr("PhD"),
		Institution: ptr("ETH Zurich"),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Members.Delete(s.ctx, m.ID))

	p, err = s.svc.Protocols.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Nil(p.AuthorID)

	records, err := s.svc.AcademicInfo.List(s.ctx, &m.ID, nil)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RecordServiceTestSuite) TestAcademicInfoRequiresMember() {
	_, err := s.svc.AcademicInfo.Create(s.ctx, AcademicInfoInput{
		Degree:      ptr("MSc"),
		Institution: ptr("TU Delft"),
	})
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.svc.AcademicInfo.Create(s.ctx, AcademicInfoInput{
		MemberID:    ptr(uint(9999)),
		Degree:      ptr("MSc"),
		Institution: ptr("TU Delft"),
	})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RecordServiceTestSuite) TestCollaboratorProjects() {
	p := s.project(1000)
	c, err := s.svc.Collaborators.Create(s.ctx, CollaboratorInput{
		Name:        ptr("Giulia Rossi"),
		Institution: ptr("Sapienza"),
		ProjectIDs:  &[]uint{p.ID},
	})
	s.Require().NoError(err)

	projects, err := s.svc.Collaborators.Projects(s.ctx, c)
	s.Require().NoError(err)
	s.Require().Len(projects, 1)
	s.Equal(p.ID, projects[0].ID)

	s.Require().NoError(s.svc.Collaborators.Delete(s.ctx, c.ID))
	_, err = s.svc.Collaborators.Get(s.ctx, c.ID)
	s.ErrorIs(err, domain.ErrNotFound)
}
