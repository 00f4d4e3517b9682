package models

import "time"

// EquipmentStatus is the availability of a lab asset
type EquipmentStatus string

// Equipment statuses
const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusInUse       EquipmentStatus = "IN_USE"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// EquipmentStatuses lists every valid equipment status
var EquipmentStatuses = []EquipmentStatus{
	EquipmentStatusAvailable,
	EquipmentStatusInUse,
	EquipmentStatusMaintenance,
}

// Valid reports whether s is a known status
func (s EquipmentStatus) Valid() bool { return validEnum(s, EquipmentStatuses) }

// Equipment is a lab asset. It is assigned to at most one of a member or a project.
type Equipment struct {
	Base
	Name         string          `json:"name" gorm:"not null;index"`
	Description  *string         `json:"description,omitempty" gorm:"type:text"`
	SerialNumber *string         `json:"serial_number,omitempty" gorm:"uniqueIndex"`
	Location     *string         `json:"location,omitempty"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
	Status       EquipmentStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	MemberID     *uint           `json:"member_id,omitempty" gorm:"index"`
	ProjectID    *uint           `json:"project_id,omitempty" gorm:"index"`

	Bookings  []Booking  `json:"-" gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	Protocols []Protocol `json:"-" gorm:"many2many:protocol_equipment;"`
}

// TableName keeps the table name singular since "equipment" is uncountable
func (Equipment) TableName() string { return "equipment" }

// Assigned reports whether the equipment is held by a member or a project
func (e *Equipment) Assigned() bool {
	return e.MemberID != nil || e.ProjectID != nil
}
