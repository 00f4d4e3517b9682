package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

func TestDeriveStatus(t *testing.T) {
	member, project := ptr(uint(1)), ptr(uint(2))
	maintenance := ptr(models.EquipmentStatusMaintenance)
	inUse := ptr(models.EquipmentStatusInUse)

	tests := []struct {
		name      string
		a         Assignment
		requested *models.EquipmentStatus
		want      models.EquipmentStatus
		wantErr   error
	}{
		{name: "unassigned", want: models.EquipmentStatusAvailable},
		{name: "member", a: Assignment{MemberID: member}, want: models.EquipmentStatusInUse},
		{name: "project", a: Assignment{ProjectID: project}, want: models.EquipmentStatusInUse},
		{name: "both", a: Assignment{MemberID: member, ProjectID: project}, wantErr: ErrDoubleAssignment},
		{name: "maintenance", requested: maintenance, want: models.EquipmentStatusMaintenance},
		{name: "maintenance while assigned", a: Assignment{MemberID: member}, requested: maintenance, wantErr: ErrAssignedForMaintenance},
		{name: "requested in use without assignee", requested: inUse, want: models.EquipmentStatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveStatus(tt.a, tt.requested)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type EquipmentServiceTestSuite struct {
	ServiceTestSuite
}

func TestEquipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentServiceTestSuite))
}

func (s *EquipmentServiceTestSuite) TestCreateDerivesStatus() {
	m := s.member()
	e := s.equipment(EquipmentInput{MemberID: &m.ID, Status: ptr(models.EquipmentStatusAvailable)})
	s.Equal(models.EquipmentStatusInUse, e.Status)

	free := s.equipment(EquipmentInput{})
	s.Equal(models.EquipmentStatusAvailable, free.Status)
}

func (s *EquipmentServiceTestSuite) TestCreateRejectsDoubleAssignment() {
	m, p := s.member(), s.project(0)
	_, err := s.svc.Equipment.Create(s.ctx, EquipmentInput{Name: ptr("Centrifuge"), MemberID: &m.ID, ProjectID: &p.ID})
	s.ErrorIs(err, ErrDoubleAssignment)
}

func (s *EquipmentServiceTestSuite) TestCreateUnknownMember() {
	_, err := s.svc.Equipment.Create(s.ctx, EquipmentInput{Name: ptr("Centrifuge"), MemberID: ptr(uint(999))})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *EquipmentServiceTestSuite) TestSerialConflict() {
	s.equipment(EquipmentInput{SerialNumber: ptr("SN-1")})
	_, err := s.svc.Equipment.Create(s.ctx, EquipmentInput{Name: ptr("Other"), SerialNumber: ptr("SN-1")})
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *EquipmentServiceTestSuite) TestAssignAndRelease() {
	m, p := s.member(), s.project(0)
	e := s.equipment(EquipmentInput{})

	e, err := s.svc.Equipment.Assign(s.ctx, e.ID, &m.ID, nil)
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusInUse, e.Status)
	s.Equal(m.ID, *e.MemberID)

	// reassigning to a project drops the member
	e, err = s.svc.Equipment.Assign(s.ctx, e.ID, nil, &p.ID)
	s.Require().NoError(err)
	s.Nil(e.MemberID)
	s.Equal(p.ID, *e.ProjectID)

	e, err = s.svc.Equipment.Release(s.ctx, e.ID)
	s.Require().NoError(err)
	s.False(e.Assigned())
	s.Equal(models.EquipmentStatusAvailable, e.Status)

	_, err = s.svc.Equipment.Assign(s.ctx, e.ID, nil, nil)
	s.ErrorIs(err, ErrNoAssignee)
}

func (s *EquipmentServiceTestSuite) TestUpdateKeepsAssignment() {
	m := s.member()
	e := s.equipment(EquipmentInput{MemberID: &m.ID})

	e, err := s.svc.Equipment.Update(s.ctx, e.ID, EquipmentInput{Location: ptr("Room 101")})
	s.Require().NoError(err)
	s.Equal(m.ID, *e.MemberID)
	s.Equal(models.EquipmentStatusInUse, e.Status)
	s.Equal("Room 101", *e.Location)
}

func (s *EquipmentServiceTestSuite) TestMaintenance() {
	m := s.member()
	e := s.equipment(EquipmentInput{})

	e, err := s.svc.Equipment.SetMaintenance(s.ctx, e.ID, true)
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusMaintenance, e.Status)

	// maintenance sticks across unrelated updates
	e, err = s.svc.Equipment.Update(s.ctx, e.ID, EquipmentInput{Name: ptr("Renamed")})
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusMaintenance, e.Status)

	_, err = s.svc.Equipment.Assign(s.ctx, e.ID, &m.ID, nil)
	s.ErrorIs(err, ErrAssignedForMaintenance)

	e, err = s.svc.Equipment.SetMaintenance(s.ctx, e.ID, false)
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusAvailable, e.Status)

	assigned := s.equipment(EquipmentInput{MemberID: &m.ID})
	_, err = s.svc.Equipment.SetMaintenance(s.ctx, assigned.ID, true)
	s.ErrorIs(err, ErrAssignedForMaintenance)
}

func (s *EquipmentServiceTestSuite) TestInvalidStatus() {
	e := s.equipment(EquipmentInput{})
	_, err := s.svc.Equipment.Update(s.ctx, e.ID, EquipmentInput{Status: ptr(models.EquipmentStatus("BROKEN"))})
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *EquipmentServiceTestSuite) TestMemberDeleteReleasesEquipment() {
	m := s.member()
	e := s.equipment(EquipmentInput{MemberID: &m.ID})

	s.Require().NoError(s.svc.Members.Delete(s.ctx, m.ID))

	e, err := s.svc.Equipment.Get(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Nil(e.MemberID)
	s.Equal(models.EquipmentStatusAvailable, e.Status)
}
