package models

// UserRole represents the role of a user in the system
type UserRole string

// User role constants
const (
	// UserRoleAdmin can manage users
	UserRoleAdmin UserRole = "ADMIN"
	// UserRoleMember is a regular dashboard user
	UserRoleMember UserRole = "MEMBER"
)

// UserRoles lists every valid user role
var UserRoles = []UserRole{UserRoleAdmin, UserRoleMember}

// Valid reports whether r is a known role
func (r UserRole) Valid() bool { return validEnum(r, UserRoles) }

// User is a dashboard login
type User struct {
	Base
	Email        string   `json:"email" gorm:"not null;uniqueIndex"`
	Name         *string  `json:"name,omitempty"`
	PasswordHash string   `json:"-" gorm:"not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(16);not null;index"`
	MemberID     *uint    `json:"member_id,omitempty" gorm:"index"`
}
