package models

// DocumentType classifies a stored document
type DocumentType string

// Document types
const (
	DocumentTypePaper        DocumentType = "PAPER"
	DocumentTypeReport       DocumentType = "REPORT"
	DocumentTypeProposal     DocumentType = "PROPOSAL"
	DocumentTypePresentation DocumentType = "PRESENTATION"
	DocumentTypeData         DocumentType = "DATA"
	DocumentTypeProtocol     DocumentType = "PROTOCOL"
	DocumentTypeOther        DocumentType = "OTHER"
)

// DocumentTypes lists every valid document type
var DocumentTypes = []DocumentType{
	DocumentTypePaper,
	DocumentTypeReport,
	DocumentTypeProposal,
	DocumentTypePresentation,
	DocumentTypeData,
	DocumentTypeProtocol,
	DocumentTypeOther,
}

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool { return validEnum(t, DocumentTypes) }

// Document is file metadata; the content itself lives in the blob store under StorageKey
type Document struct {
	Base
	Title       string       `json:"title" gorm:"not null;index"`
	Description *string      `json:"description,omitempty" gorm:"type:text"`
	Type        DocumentType `json:"type" gorm:"type:varchar(32);not null;index"`
	FileName    *string      `json:"file_name,omitempty"`
	ContentType *string      `json:"content_type,omitempty"`
	Size        int64        `json:"size"`
	StorageKey  *string      `json:"-"`
	ProjectID   *uint        `json:"project_id,omitempty" gorm:"index"`
	MemberID    *uint        `json:"member_id,omitempty" gorm:"index"`
}

// HasContent reports whether a file has been uploaded for the document
func (d *Document) HasContent() bool {
	return d.StorageKey != nil && *d.StorageKey != ""
}
