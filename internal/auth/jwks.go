package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/logger"
)

// ExternalClaims are the claims read from identity provider tokens.
// Roles are never taken from the provider.
type ExternalClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWKSVerifier verifies tokens signed by an external identity provider.
// Keys are fetched from the JWKS endpoint and refreshed by keyfunc.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	issuer string
}

// NewJWKSVerifier creates a verifier for the keys published at jwksURL.
// If issuer is set, tokens must carry it.
func NewJWKSVerifier(ctx context.Context, jwksURL, issuer string) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}
	logger.InfoWithFields("JWKS verifier initialized", map[string]interface{}{"jwks_url": jwksURL})
	return newJWKSVerifier(jwks, issuer), nil
}

func newJWKSVerifier(jwks keyfunc.Keyfunc, issuer string) *JWKSVerifier {
	return &JWKSVerifier{jwks: jwks, issuer: issuer}
}

// Verify validates token against the provider's keys.
// Only asymmetric algorithms are accepted.
func (v *JWKSVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "ES256"}), jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	claims := &ExternalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.jwks.Keyfunc, opts...)
	if err != nil || !parsed.Valid {
		logger.Debugf("external token rejected: %v", err)
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token missing subject", domain.ErrUnauthorized)
	}
	return &Identity{Subject: claims.Subject, Email: claims.Email, Role: models.UserRoleMember}, nil
}

// Chain tries each verifier in order and returns the first identity accepted
type Chain []Verifier

// Verify implements Verifier
func (c Chain) Verify(ctx context.Context, token string) (*Identity, error) {
	for _, v := range c {
		if v == nil {
			continue
		}
		if id, err := v.Verify(ctx, token); err == nil {
			return id, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
}
