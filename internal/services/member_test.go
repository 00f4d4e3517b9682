package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
)

type MemberServiceTestSuite struct {
	ServiceTestSuite
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}

func (s *MemberServiceTestSuite) TestCreateDefaults() {
	m, err := s.svc.Members.Create(s.ctx, MemberInput{
		Name:  ptr("  Ada Lovelace "),
		Email: ptr("Ada@Lab.Example"),
	})
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", m.Name)
	s.Equal("ada@lab.example", m.Email)
	s.Equal(models.MemberRoleOther, m.Role)
	s.Equal(models.MemberStatusActive, m.Status)
}

func (s *MemberServiceTestSuite) TestValidation() {
	tests := []struct {
		name string
		in   MemberInput
	}{
		{"missing name", MemberInput{Email: ptr("a@lab.example")}},
		{"bad email", MemberInput{Name: ptr("A"), Email: ptr("not-an-email")}},
		{"bad role", MemberInput{Name: ptr("A"), Email: ptr("a@lab.example"), Role: ptr(models.MemberRole("DEAN"))}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Members.Create(s.ctx, tt.in)
			s.ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *MemberServiceTestSuite) TestEmailConflict() {
	m := s.member()
	_, err := s.svc.Members.Create(s.ctx, MemberInput{Name: ptr("Copy"), Email: ptr(m.Email)})
	s.ErrorIs(err, domain.ErrConflict)

	other := s.member()
	_, err = s.svc.Members.Update(s.ctx, other.ID, MemberInput{Email: ptr(m.Email)})
	s.ErrorIs(err, domain.ErrConflict)

	// keeping your own email is fine
	_, err = s.svc.Members.Update(s.ctx, m.ID, MemberInput{Email: ptr(m.Email), Bio: ptr("hello")})
	s.NoError(err)
}

func (s *MemberServiceTestSuite) TestUpdateClearsText() {
	m, err := s.svc.Members.Create(s.ctx, MemberInput{Name: ptr("B"), Email: ptr("b@lab.example"), Phone: ptr("123")})
	s.Require().NoError(err)

	m, err = s.svc.Members.Update(s.ctx, m.ID, MemberInput{Phone: ptr("")})
	s.Require().NoError(err)
	s.Nil(m.Phone)
}

func (s *MemberServiceTestSuite) TestProjects() {
	p1, p2 := s.project(0), s.project(0)
	m, err := s.svc.Members.Create(s.ctx, MemberInput{
		Name:       ptr("C"),
		Email:      ptr("c@lab.example"),
		ProjectIDs: &[]uint{p1.ID, p2.ID, p1.ID},
	})
	s.Require().NoError(err)

	projects, err := s.svc.Members.Projects(s.ctx, m)
	s.Require().NoError(err)
	s.Len(projects, 2)

	list, err := s.svc.Members.List(s.ctx, repos.MemberFilter{ProjectID: &p2.ID}, nil)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(m.ID, list[0].ID)

	_, err = s.svc.Members.Update(s.ctx, m.ID, MemberInput{ProjectIDs: &[]uint{999}})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *MemberServiceTestSuite) TestProjectMembership() {
	m, p := s.member(), s.project(0)

	_, err := s.svc.Projects.AddMember(s.ctx, p.ID, m.ID)
	s.Require().NoError(err)
	_, err = s.svc.Projects.AddMember(s.ctx, p.ID, m.ID)
	s.Require().NoError(err)

	members, err := s.svc.Projects.Members(s.ctx, p)
	s.Require().NoError(err)
	s.Len(members, 1)

	_, err = s.svc.Projects.RemoveMember(s.ctx, p.ID, m.ID)
	s.Require().NoError(err)
	members, err = s.svc.Projects.Members(s.ctx, p)
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *MemberServiceTestSuite) TestProjectDates() {
	_, err := s.svc.Projects.Create(s.ctx, ProjectInput{
		Title:     ptr("Backwards"),
		StartDate: at(48),
		EndDate:   at(0),
	})
	s.ErrorIs(err, domain.ErrValidation)
}
