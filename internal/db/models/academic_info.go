package models

// AcademicInfo is one degree in a member's academic history
type AcademicInfo struct {
	Base
	MemberID    uint    `json:"member_id" gorm:"not null;index"`
	Degree      string  `json:"degree" gorm:"not null"`
	Field       *string `json:"field,omitempty"`
	Institution string  `json:"institution" gorm:"not null"`
	Year        *int    `json:"year,omitempty"`
	ThesisTitle *string `json:"thesis_title,omitempty"`
	Advisor     *string `json:"advisor,omitempty"`
}

// TableName keeps the table name plural
func (AcademicInfo) TableName() string { return "academic_infos" }
