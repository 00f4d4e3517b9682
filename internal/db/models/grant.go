package models

import "time"

// GrantStatus is the funding stage of a grant
type GrantStatus string

// Grant statuses
const (
	GrantStatusPlanning  GrantStatus = "PLANNING"
	GrantStatusSubmitted GrantStatus = "SUBMITTED"
	GrantStatusActive    GrantStatus = "ACTIVE"
	GrantStatusCompleted GrantStatus = "COMPLETED"
	GrantStatusRejected  GrantStatus = "REJECTED"
)

// GrantStatuses lists every valid grant status
var GrantStatuses = []GrantStatus{
	GrantStatusPlanning,
	GrantStatusSubmitted,
	GrantStatusActive,
	GrantStatusCompleted,
	GrantStatusRejected,
}

// Valid reports whether s is a known status
func (s GrantStatus) Valid() bool { return validEnum(s, GrantStatuses) }

// Grant is a funding award with a budget, consumed by expenses
type Grant struct {
	Base
	Title           string      `json:"title" gorm:"not null;index"`
	Agency          string      `json:"agency" gorm:"not null;index"`
	ReferenceNumber *string     `json:"reference_number,omitempty"`
	Description     *string     `json:"description,omitempty" gorm:"type:text"`
	Budget          float64     `json:"budget" gorm:"not null"`
	Status          GrantStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	StartDate       *time.Time  `json:"start_date,omitempty"`
	EndDate         *time.Time  `json:"end_date,omitempty"`
	Deadline        *time.Time  `json:"deadline,omitempty"`

	Projects []Project `json:"-" gorm:"many2many:project_grants;"`
	Expenses []Expense `json:"-" gorm:"foreignKey:GrantID;constraint:OnDelete:SET NULL"`
}
