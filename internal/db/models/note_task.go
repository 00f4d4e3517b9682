package models

import "time"

// NoteKind distinguishes free-form notes from actionable tasks
type NoteKind string

// Note kinds
const (
	NoteKindNote NoteKind = "NOTE"
	NoteKindTask NoteKind = "TASK"
)

// NoteKinds lists every valid note kind
var NoteKinds = []NoteKind{NoteKindNote, NoteKindTask}

// Valid reports whether k is a known kind
func (k NoteKind) Valid() bool { return validEnum(k, NoteKinds) }

// Priority orders tasks
type Priority string

// Priorities
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists every valid priority
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool { return validEnum(p, Priorities) }

// NoteTask is a note or a to-do item owned by a member and/or a project
type NoteTask struct {
	Base
	Title     string     `json:"title" gorm:"not null"`
	Content   *string    `json:"content,omitempty" gorm:"type:text"`
	Kind      NoteKind   `json:"kind" gorm:"type:varchar(16);not null;index"`
	Priority  Priority   `json:"priority" gorm:"type:varchar(16);not null"`
	Completed bool       `json:"completed" gorm:"not null;index"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	MemberID  *uint      `json:"member_id,omitempty" gorm:"index"`
	ProjectID *uint      `json:"project_id,omitempty" gorm:"index"`
}

// TableName keeps the table name readable
func (NoteTask) TableName() string { return "note_tasks" }
