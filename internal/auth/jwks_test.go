package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

const testKeyID = "idp-key"

func newTestJWKS(t *testing.T) (*rsa.PrivateKey, keyfunc.Keyfunc) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	set := map[string]interface{}{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": testKeyID,
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
		}},
	}
	raw, err := json.Marshal(set)
	require.NoError(t, err)
	jwks, err := keyfunc.NewJWKSetJSON(raw)
	require.NoError(t, err)
	return key, jwks
}

func signExternal(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestJWKSVerifierIgnoresRoleClaim(t *testing.T) {
	key, jwks := newTestJWKS(t)
	v := newJWKSVerifier(jwks, "https://idp.example")

	token := signExternal(t, key, jwt.MapClaims{
		"sub":   "idp|42",
		"email": "postdoc@lab.example",
		"role":  "ADMIN",
		"iss":   "https://idp.example",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	id, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "idp|42", id.Subject)
	assert.Equal(t, "postdoc@lab.example", id.Email)
	assert.Equal(t, models.UserRoleMember, id.Role)
	assert.False(t, id.IsAdmin())
	assert.Zero(t, id.UserID)
}

func TestJWKSVerifierRejects(t *testing.T) {
	key, jwks := newTestJWKS(t)
	v := newJWKSVerifier(jwks, "https://idp.example")

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"wrong issuer", jwt.MapClaims{"sub": "a", "iss": "https://other.example", "exp": time.Now().Add(time.Hour).Unix()}},
		{"no expiry", jwt.MapClaims{"sub": "a", "iss": "https://idp.example"}},
		{"no subject", jwt.MapClaims{"iss": "https://idp.example", "exp": time.Now().Add(time.Hour).Unix()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), signExternal(t, key, tt.claims))
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
