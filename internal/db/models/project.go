package models

import "time"

// ProjectStatus is the lifecycle stage of a research project
type ProjectStatus string

// Project statuses
const (
	ProjectStatusPlanning  ProjectStatus = "PLANNING"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

// ProjectStatuses lists every valid project status
var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusActive,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

// Valid reports whether s is a known status
func (s ProjectStatus) Valid() bool { return validEnum(s, ProjectStatuses) }

// Project is a research initiative associated with members, grants and expenses
type Project struct {
	Base
	Title       string        `json:"title" gorm:"not null;index"`
	Description *string       `json:"description,omitempty" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Budget      float64       `json:"budget" gorm:"not null"`

	Members       []Member       `json:"-" gorm:"many2many:project_members;"`
	Grants        []Grant        `json:"-" gorm:"many2many:project_grants;"`
	Publications  []Publication  `json:"-" gorm:"many2many:publication_projects;"`
	Protocols     []Protocol     `json:"-" gorm:"many2many:protocol_projects;"`
	Collaborators []Collaborator `json:"-" gorm:"many2many:collaborator_projects;"`
	Expenses      []Expense      `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Equipment     []Equipment    `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Bookings      []Booking      `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Documents     []Document     `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Events        []Event        `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	NoteTasks     []NoteTask     `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
}
