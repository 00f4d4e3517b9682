// Package graph serves the lab-management GraphQL API
package graph

import (
	"context"
	"errors"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/services"
)

// Resolver is the root of the schema. Its methods are the Query and Mutation fields.
type Resolver struct {
	svc         *services.Services
	requireAuth bool
}

// NewResolver creates the root resolver. When requireAuth is set every field
// other than login and signUp needs an authenticated caller.
func NewResolver(svc *services.Services, requireAuth bool) *Resolver {
	return &Resolver{svc: svc, requireAuth: requireAuth}
}

func (r *Resolver) authorize(ctx context.Context) error {
	if r.requireAuth && auth.FromContext(ctx) == nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// requireAdmin applies to user management regardless of requireAuth.
// External identities get their role from the local user with the same email.
func (r *Resolver) requireAdmin(ctx context.Context) error {
	id := auth.FromContext(ctx)
	if id == nil {
		return domain.ErrUnauthorized
	}
	if id.IsAdmin() {
		return nil
	}
	if id.UserID == 0 && id.Email != "" {
		user, err := r.svc.Users.Me(ctx, id)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if user != nil && user.Role == models.UserRoleAdmin {
			return nil
		}
	}
	return domain.ErrForbidden
}

// PageArgs are the search and pagination arguments shared by list queries
type PageArgs struct {
	Search *string
	Limit  *int32
	Offset *int32
}

func (a PageArgs) options() *models.ListOptions {
	opts := &models.ListOptions{}
	if a.Search != nil {
		opts.Search = *a.Search
	}
	if a.Limit != nil {
		opts.Limit = int(*a.Limit)
	}
	if a.Offset != nil {
		opts.Offset = int(*a.Offset)
	}
	return opts
}

// RelationArgs page the one-to-many fields of an object. Without a limit a
// relation returns its first MaxLimit items.
type RelationArgs struct {
	Limit  *int32
	Offset *int32
}

func (a RelationArgs) options() *models.ListOptions {
	opts := &models.ListOptions{Limit: models.MaxLimit}
	if a.Limit != nil {
		opts.Limit = int(*a.Limit)
	}
	if a.Offset != nil {
		opts.Offset = int(*a.Offset)
	}
	return opts
}

type idArgs struct {
	ID graphql.ID
}

func toID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

func parseID(id graphql.ID) (uint, error) {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil || n == 0 {
		return 0, domain.Invalidf("invalid id %q", string(id))
	}
	return uint(n), nil
}

func parseOptionalID(id *graphql.ID) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	n, err := parseID(*id)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseIDs(ids *[]graphql.ID) (*[]uint, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]uint, len(*ids))
	for i, id := range *ids {
		n, err := parseID(id)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return &out, nil
}

// idParser collects the first error of several ID conversions
type idParser struct {
	err error
}

func (p *idParser) one(id *graphql.ID) *uint {
	n, err := parseOptionalID(id)
	if p.err == nil {
		p.err = err
	}
	return n
}

func (p *idParser) many(ids *[]graphql.ID) *[]uint {
	n, err := parseIDs(ids)
	if p.err == nil {
		p.err = err
	}
	return n
}

func enum[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func gqlTime(t time.Time) graphql.Time {
	return graphql.Time{Time: t}
}

func gqlTimePtr(t *time.Time) *graphql.Time {
	if t == nil {
		return nil
	}
	return &graphql.Time{Time: *t}
}

func fromTime(t *graphql.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// orNil turns a not-found error into a null result
func orNil(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func wrapAll[M any, R any](items []M, wrap func(*M) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = wrap(&items[i])
	}
	return out
}
