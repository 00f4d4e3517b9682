package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

type UserServiceTestSuite struct {
	ServiceTestSuite
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) signUp(email string) *AuthPayload {
	out, err := s.svc.Users.SignUp(s.ctx, SignUpInput{Email: email, Password: "correct horse"})
	s.Require().NoError(err)
	return out
}

func (s *UserServiceTestSuite) TestFirstUserIsAdmin() {
	first := s.signUp("first@lab.example")
	s.Equal(models.UserRoleAdmin, first.User.Role)
	s.NotEmpty(first.Token)
	s.NotEmpty(first.User.PasswordHash)

	second := s.signUp("second@lab.example")
	s.Equal(models.UserRoleMember, second.User.Role)
}

func (s *UserServiceTestSuite) TestSignUpValidation() {
	_, err := s.svc.Users.SignUp(s.ctx, SignUpInput{Email: "short@lab.example", Password: "123"})
	s.ErrorIs(err, domain.ErrValidation)

	s.signUp("dup@lab.example")
	_, err = s.svc.Users.SignUp(s.ctx, SignUpInput{Email: "DUP@lab.example", Password: "correct horse"})
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *UserServiceTestSuite) TestSignUpDisabled() {
	s.svc.Users.allowSignup = false

	s.signUp("owner@lab.example")
	_, err := s.svc.Users.SignUp(s.ctx, SignUpInput{Email: "guest@lab.example", Password: "correct horse"})
	s.ErrorIs(err, ErrSignupDisabled)
	s.ErrorIs(err, domain.ErrForbidden)
}

func (s *UserServiceTestSuite) TestLogin() {
	s.signUp("login@lab.example")

	out, err := s.svc.Users.Login(s.ctx, "login@lab.example", "correct horse")
	s.Require().NoError(err)

	id, err := auth.NewIssuer("test-secret", "labtrack", 0).Verify(s.ctx, out.Token)
	s.Require().NoError(err)
	s.Equal(out.User.ID, id.UserID)

	me, err := s.svc.Users.Me(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("login@lab.example", me.Email)

	_, err = s.svc.Users.Login(s.ctx, "login@lab.example", "wrong")
	s.ErrorIs(err, domain.ErrUnauthorized)
	_, err = s.svc.Users.Login(s.ctx, "nobody@lab.example", "correct horse")
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestEnsureAdmin() {
	s.Require().NoError(s.svc.Users.EnsureAdmin(s.ctx, "Root@Lab.Example", "bootstrap-pass"))
	s.Require().NoError(s.svc.Users.EnsureAdmin(s.ctx, "root@lab.example", "other-pass"))

	users, err := s.svc.Users.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(models.UserRoleAdmin, users[0].Role)

	_, err = s.svc.Users.Login(s.ctx, "root@lab.example", "bootstrap-pass")
	s.NoError(err)
}

func (s *UserServiceTestSuite) TestMeExternalIdentity() {
	s.signUp("ext@lab.example")

	me, err := s.svc.Users.Me(s.ctx, &auth.Identity{Subject: "oidc|1", Email: "ext@lab.example"})
	s.Require().NoError(err)
	s.Equal("ext@lab.example", me.Email)

	_, err = s.svc.Users.Me(s.ctx, nil)
	s.ErrorIs(err, domain.ErrUnauthorized)
}
