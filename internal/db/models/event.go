package models

import "time"

// EventType classifies a lab calendar entry
type EventType string

// Event types
const (
	EventTypeMeeting    EventType = "MEETING"
	EventTypeSeminar    EventType = "SEMINAR"
	EventTypeConference EventType = "CONFERENCE"
	EventTypeWorkshop   EventType = "WORKSHOP"
	EventTypeDeadline   EventType = "DEADLINE"
	EventTypeSocial     EventType = "SOCIAL"
	EventTypeOther      EventType = "OTHER"
)

// EventTypes lists every valid event type
var EventTypes = []EventType{
	EventTypeMeeting,
	EventTypeSeminar,
	EventTypeConference,
	EventTypeWorkshop,
	EventTypeDeadline,
	EventTypeSocial,
	EventTypeOther,
}

// Valid reports whether t is a known event type
func (t EventType) Valid() bool { return validEnum(t, EventTypes) }

// Event is an entry on the lab calendar
type Event struct {
	Base
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	Type        EventType  `json:"type" gorm:"type:varchar(32);not null;index"`
	StartTime   time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    *string    `json:"location,omitempty"`
	ProjectID   *uint      `json:"project_id,omitempty" gorm:"index"`

	Attendees []Member `json:"-" gorm:"many2many:event_attendees;"`
}
