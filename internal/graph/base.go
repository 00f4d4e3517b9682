package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/db/models"
)

// base resolves the fields every entity has
type base struct {
	b models.Base
}

func (x base) ID() graphql.ID {
	return toID(x.b.ID)
}

func (x base) CreatedAt() graphql.Time {
	return gqlTime(x.b.CreatedAt)
}

func (x base) UpdatedAt() graphql.Time {
	return gqlTime(x.b.UpdatedAt)
}
