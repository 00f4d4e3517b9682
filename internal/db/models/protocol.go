package models

// DefaultProtocolVersion is assigned to protocols created without a version
const DefaultProtocolVersion = "1.0"

// Protocol is a documented lab procedure
type Protocol struct {
	Base
	Title       string  `json:"title" gorm:"not null;index"`
	Description *string `json:"description,omitempty" gorm:"type:text"`
	Category    *string `json:"category,omitempty" gorm:"index"`
	Version     string  `json:"version" gorm:"not null"`
	Content     *string `json:"content,omitempty" gorm:"type:text"`
	AuthorID    *uint   `json:"author_id,omitempty" gorm:"index"`

	Projects  []Project   `json:"-" gorm:"many2many:protocol_projects;"`
	Equipment []Equipment `json:"-" gorm:"many2many:protocol_equipment;"`
}
