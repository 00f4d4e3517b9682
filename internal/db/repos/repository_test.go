package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

type RepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestRepository(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.store.Members.Get(s.ctx, 999)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Contains(err.Error(), "member 999")
}

func (s *RepositoryTestSuite) TestUpdate() {
	member := s.createMember()
	member.Status = models.MemberStatusAlumni
	s.Require().NoError(s.store.Members.Update(s.ctx, member))

	found, err := s.store.Members.Get(s.ctx, member.ID)
	s.Require().NoError(err)
	s.Equal(models.MemberStatusAlumni, found.Status)
}

func (s *RepositoryTestSuite) TestListNewestFirstWithPagination() {
	first := s.createMember()
	second := s.createMember()
	third := s.createMember()

	members, err := s.store.Members.List(s.ctx, MemberFilter{}, nil)
	s.Require().NoError(err)
	s.Require().Len(members, 3)
	s.Equal(third.ID, members[0].ID)
	s.Equal(first.ID, members[2].ID)

	page, err := s.store.Members.List(s.ctx, MemberFilter{}, &models.ListOptions{Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(second.ID, page[0].ID)
}

func (s *RepositoryTestSuite) TestListSearchIsCaseInsensitive() {
	s.createMember()
	target := s.createMember()
	target.Name = "Ada Lovelace"
	s.Require().NoError(s.store.Members.Update(s.ctx, target))

	members, err := s.store.Members.List(s.ctx, MemberFilter{}, &models.ListOptions{Search: "lovelace"})
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(target.ID, members[0].ID)
}

func (s *RepositoryTestSuite) TestListFilters() {
	s.createMember()
	postdoc := s.createMember()
	postdoc.Role = models.MemberRolePostdoc
	s.Require().NoError(s.store.Members.Update(s.ctx, postdoc))

	members, err := s.store.Members.List(s.ctx, MemberFilter{Role: ptr(models.MemberRolePostdoc)}, nil)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(postdoc.ID, members[0].ID)

	count, err := s.store.Members.CountWhere(s.ctx, MemberFilter{Status: ptr(models.MemberStatusActive)})
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *RepositoryTestSuite) TestRequireIDs() {
	a := s.createMember()
	b := s.createMember()

	s.NoError(s.store.Members.RequireIDs(s.ctx, a.ID, b.ID))
	s.NoError(s.store.Members.RequireIDs(s.ctx))

	err := s.store.Members.RequireIDs(s.ctx, a.ID, 404)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Contains(err.Error(), "member 404")
}

func (s *RepositoryTestSuite) TestDeleteNotFound() {
	err := s.store.Grants.Delete(s.ctx, 12)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RepositoryTestSuite) TestTransactionRollsBack() {
	err := s.store.Transaction(s.ctx, func(tx *Store) error {
		s.Require().NoError(tx.Members.Create(s.ctx, &models.Member{
			Name: "Temp", Email: "temp@lab.example", Role: models.MemberRoleOther, Status: models.MemberStatusActive,
		}))
		return domain.ErrValidation
	})
	s.ErrorIs(err, domain.ErrValidation)

	count, err := s.store.Members.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}
