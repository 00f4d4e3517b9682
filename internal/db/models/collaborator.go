package models

// Collaborator is an external researcher working with the lab
type Collaborator struct {
	Base
	Name        string  `json:"name" gorm:"not null;index"`
	Email       *string `json:"email,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Expertise   *string `json:"expertise,omitempty"`
	Notes       *string `json:"notes,omitempty" gorm:"type:text"`

	Projects     []Project     `json:"-" gorm:"many2many:collaborator_projects;"`
	Publications []Publication `json:"-" gorm:"many2many:publication_collaborators;"`
}
