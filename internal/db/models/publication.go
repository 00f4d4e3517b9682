package models

import "time"

// PublicationStatus is the review stage of a publication
type PublicationStatus string

// Publication statuses
const (
	PublicationStatusDraft       PublicationStatus = "DRAFT"
	PublicationStatusSubmitted   PublicationStatus = "SUBMITTED"
	PublicationStatusUnderReview PublicationStatus = "UNDER_REVIEW"
	PublicationStatusAccepted    PublicationStatus = "ACCEPTED"
	PublicationStatusPublished   PublicationStatus = "PUBLISHED"
)

// PublicationStatuses lists every valid publication status
var PublicationStatuses = []PublicationStatus{
	PublicationStatusDraft,
	PublicationStatusSubmitted,
	PublicationStatusUnderReview,
	PublicationStatusAccepted,
	PublicationStatusPublished,
}

// Valid reports whether s is a known status
func (s PublicationStatus) Valid() bool { return validEnum(s, PublicationStatuses) }

// Publication is a paper or article produced by the lab
type Publication struct {
	Base
	Title       string            `json:"title" gorm:"not null;index"`
	Abstract    *string           `json:"abstract,omitempty" gorm:"type:text"`
	Venue       *string           `json:"venue,omitempty"`
	DOI         *string           `json:"doi,omitempty" gorm:"column:doi;uniqueIndex"`
	URL         *string           `json:"url,omitempty"`
	Status      PublicationStatus `json:"status" gorm:"type:varchar(32);not null;index"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`

	Authors       []Member       `json:"-" gorm:"many2many:publication_authors;"`
	Collaborators []Collaborator `json:"-" gorm:"many2many:publication_collaborators;"`
	Projects      []Project      `json:"-" gorm:"many2many:publication_projects;"`
}
