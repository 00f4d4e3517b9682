package models

import "time"

// Booking is a reservation of equipment by a member for a time window
type Booking struct {
	Base
	EquipmentID uint      `json:"equipment_id" gorm:"not null;index"`
	MemberID    uint      `json:"member_id" gorm:"not null;index"`
	ProjectID   *uint     `json:"project_id,omitempty" gorm:"index"`
	StartTime   time.Time `json:"start_time" gorm:"not null;index"`
	EndTime     time.Time `json:"end_time" gorm:"not null;index"`
	Purpose     *string   `json:"purpose,omitempty" gorm:"type:text"`
}
