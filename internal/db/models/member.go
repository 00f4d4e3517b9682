package models

import "time"

// MemberRole is the position a member holds in the lab
type MemberRole string

// Member roles
const (
	MemberRoleProfessor          MemberRole = "PROFESSOR"
	MemberRolePostdoc            MemberRole = "POSTDOC"
	MemberRolePhDStudent         MemberRole = "PHD_STUDENT"
	MemberRoleMastersStudent     MemberRole = "MASTERS_STUDENT"
	MemberRoleUndergraduate      MemberRole = "UNDERGRADUATE"
	MemberRoleResearchAssistant  MemberRole = "RESEARCH_ASSISTANT"
	MemberRoleTechnician         MemberRole = "TECHNICIAN"
	MemberRoleVisitingResearcher MemberRole = "VISITING_RESEARCHER"
	MemberRoleOther              MemberRole = "OTHER"
)

// MemberRoles lists every valid member role
var MemberRoles = []MemberRole{
	MemberRoleProfessor,
	MemberRolePostdoc,
	MemberRolePhDStudent,
	MemberRoleMastersStudent,
	MemberRoleUndergraduate,
	MemberRoleResearchAssistant,
	MemberRoleTechnician,
	MemberRoleVisitingResearcher,
	MemberRoleOther,
}

// Valid reports whether r is a known role
func (r MemberRole) Valid() bool { return validEnum(r, MemberRoles) }

// MemberStatus tracks whether a member is still with the lab
type MemberStatus string

// Member statuses
const (
	MemberStatusActive   MemberStatus = "ACTIVE"
	MemberStatusOnLeave  MemberStatus = "ON_LEAVE"
	MemberStatusAlumni   MemberStatus = "ALUMNI"
	MemberStatusInactive MemberStatus = "INACTIVE"
)

// MemberStatuses lists every valid member status
var MemberStatuses = []MemberStatus{
	MemberStatusActive,
	MemberStatusOnLeave,
	MemberStatusAlumni,
	MemberStatusInactive,
}

// Valid reports whether s is a known status
func (s MemberStatus) Valid() bool { return validEnum(s, MemberStatuses) }

// Member represents a lab personnel record
type Member struct {
	Base
	Name              string       `json:"name" gorm:"not null;index"`
	Email             string       `json:"email" gorm:"not null;uniqueIndex"`
	Role              MemberRole   `json:"role" gorm:"type:varchar(32);not null;index"`
	Status            MemberStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	Title             *string      `json:"title,omitempty"`
	Phone             *string      `json:"phone,omitempty"`
	Bio               *string      `json:"bio,omitempty" gorm:"type:text"`
	AvatarURL         *string      `json:"avatar_url,omitempty"`
	ResearchInterests *string      `json:"research_interests,omitempty" gorm:"type:text"`
	JoinedAt          *time.Time   `json:"joined_at,omitempty"`

	Projects          []Project      `json:"-" gorm:"many2many:project_members;"`
	Publications      []Publication  `json:"-" gorm:"many2many:publication_authors;"`
	Events            []Event        `json:"-" gorm:"many2many:event_attendees;"`
	Equipment         []Equipment    `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:SET NULL"`
	Bookings          []Booking      `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	AcademicInfo      []AcademicInfo `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	NoteTasks         []NoteTask     `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Documents         []Document     `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:SET NULL"`
	AuthoredProtocols []Protocol     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}
