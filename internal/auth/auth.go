// Package auth hashes passwords, issues and verifies bearer tokens and
// carries the caller's identity through request contexts.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labtrack/labtrack/internal/db/models"
)

// Identity is the authenticated caller of a request
type Identity struct {
	UserID  uint
	Subject string
	Email   string
	Role    models.UserRole
}

// IsAdmin reports whether the caller may manage users
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.UserRoleAdmin
}

// Verifier validates a bearer token and returns the identity it carries
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored in ctx, or nil for anonymous requests
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// FromRequest returns the bearer token of r, if any
func FromRequest(r *http.Request) string {
	return BearerToken(r.Header.Get("Authorization"))
}
