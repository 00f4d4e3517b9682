// Package models defines the gorm models persisted by labtrack.
package models

import (
	"slices"
	"time"
)

const (
	// DefaultLimit is the max number of rows that are retrieved from the DB per listing call
	DefaultLimit = 50
	// MaxLimit caps the page size a caller may request
	MaxLimit = 1000
)

// Base carries the columns shared by every table. Rows are hard deleted, so
// unlike gorm.Model there is no DeletedAt column.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListOptions represents pagination and filtering options for list operations
type ListOptions struct {
	Limit  int    `json:"limit"`  // Number of items to return
	Offset int    `json:"offset"` // Number of items to skip
	Search string `json:"search,omitempty"`
}

// Normalize clamps the pagination values into their allowed ranges.
// A nil receiver yields the defaults.
func (o *ListOptions) Normalize() ListOptions {
	if o == nil {
		return ListOptions{Limit: DefaultLimit}
	}
	out := *o
	if out.Limit <= 0 {
		out.Limit = DefaultLimit
	}
	if out.Limit > MaxLimit {
		out.Limit = MaxLimit
	}
	if out.Offset < 0 {
		out.Offset = 0
	}
	return out
}

// enum is satisfied by the string enums declared in this package.
type enum interface {
	~string
}

func validEnum[T enum](v T, all []T) bool {
	return slices.Contains(all, v)
}
