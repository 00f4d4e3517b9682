package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/db/dbtest"
	"github.com/labtrack/labtrack/internal/db/models"
)

var testNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// ServiceTestSuite runs services against a fresh sqlite database per test
type ServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	svc   *Services
	blobs *blob.MemoryStore
	seq   int
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.blobs = blob.NewMemoryStore()
	s.svc = New(dbtest.Open(s.T()), Options{
		Blob:        s.blobs,
		Issuer:      auth.NewIssuer("test-secret", "labtrack", time.Hour),
		AllowSignup: true,
		Now:         func() time.Time { return testNow },
	})
}

func (s *ServiceTestSuite) next() int {
	s.seq++
	return s.seq
}

func (s *ServiceTestSuite) member() *models.Member {
	n := s.next()
	m, err := s.svc.Members.Create(s.ctx, MemberInput{
		Name:  ptr(fmt.Sprintf("Member %d", n)),
		Email: ptr(fmt.Sprintf("member%d@lab.example", n)),
		Role:  ptr(models.MemberRolePostdoc),
	})
	s.Require().NoError(err)
	return m
}

func (s *ServiceTestSuite) project(budget float64) *models.Project {
	p, err := s.svc.Projects.Create(s.ctx, ProjectInput{
		Title:  ptr(fmt.Sprintf("Project %d", s.next())),
		Status: ptr(models.ProjectStatusActive),
		Budget: ptr(budget),
	})
	s.Require().NoError(err)
	return p
}

func (s *ServiceTestSuite) grant(budget float64) *models.Grant {
	g, err := s.svc.Grants.Create(s.ctx, GrantInput{
		Title:  ptr(fmt.Sprintf("Grant %d", s.next())),
		Agency: ptr("NSF"),
		Budget: ptr(budget),
		Status: ptr(models.GrantStatusActive),
	})
	s.Require().NoError(err)
	return g
}

func (s *ServiceTestSuite) equipment(in EquipmentInput) *models.Equipment {
	if in.Name == nil {
		in.Name = ptr(fmt.Sprintf("Microscope %d", s.next()))
	}
	e, err := s.svc.Equipment.Create(s.ctx, in)
	s.Require().NoError(err)
	return e
}

func at(hour int) *time.Time {
	t := testNow.Add(time.Duration(hour) * time.Hour)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}
