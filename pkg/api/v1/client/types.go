package client

import (
	"errors"
	"fmt"
	"time"
)

// ListParams selects a page of a list query. Page starts at 1.
type ListParams struct {
	Search string
	Page   int
	Limit  int
}

func (p ListParams) variables() map[string]interface{} {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	vars := map[string]interface{}{"limit": limit, "offset": (page - 1) * limit}
	if p.Search != "" {
		vars["search"] = p.Search
	}
	return vars
}

// User is an account as returned by the API
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

// AuthPayload is the result of a login
type AuthPayload struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Member is a lab member as returned by the API
type Member struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Status string  `json:"status"`
	Title  *string `json:"title"`
}

// MemberParams creates a member
type MemberParams struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role,omitempty"`
	Status string  `json:"status,omitempty"`
	Title  *string `json:"title,omitempty"`
}

// Project is a research project with its budget roll-up
type Project struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Budget    float64    `json:"budget"`
	Spent     float64    `json:"spent"`
	Remaining float64    `json:"remaining"`
}

// ProjectParams creates a project
type ProjectParams struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Budget      float64    `json:"budget"`
	MemberIDs   []string   `json:"memberIds,omitempty"`
}

// Grant is a funding award with its budget roll-up
type Grant struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Agency    string  `json:"agency"`
	Status    string  `json:"status"`
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// Ref is a named reference to another entity
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Equipment is a lab asset and its current holder
type Equipment struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SerialNumber *string `json:"serialNumber"`
	Location     *string `json:"location"`
	Status       string  `json:"status"`
	Member       *Ref    `json:"member"`
	Project      *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"project"`
}

// EquipmentParams creates equipment
type EquipmentParams struct {
	Name         string  `json:"name"`
	SerialNumber *string `json:"serialNumber,omitempty"`
	Location     *string `json:"location,omitempty"`
	MemberID     *string `json:"memberId,omitempty"`
	ProjectID    *string `json:"projectId,omitempty"`
}

// Budget is the budget, spent and remaining amount of a project or grant
type Budget struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// GraphQLError is an error reported by the GraphQL endpoint
type GraphQLError struct {
	Message    string        `json:"message"`
	Path       []interface{} `json:"path,omitempty"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

func (e *GraphQLError) Error() string {
	if e.Extensions.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Extensions.Code)
}

// ErrorCode returns the code of the GraphQL error in err's chain, or ""
func ErrorCode(err error) string {
	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		return gqlErr.Extensions.Code
	}
	return ""
}
