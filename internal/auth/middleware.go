package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Middleware attaches the identity of a bearer token to the request context.
// Requests without a token pass through anonymously; invalid tokens are rejected.
func Middleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := FromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, err := v.Verify(r.Context(), token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// FiberMiddleware is the fiber counterpart of Middleware. When required is
// true, anonymous requests are rejected.
func FiberMiddleware(v Verifier, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			if required {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
			}
			return c.Next()
		}
		id, err := v.Verify(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.SetUserContext(WithIdentity(c.UserContext(), id))
		return c.Next()
	}
}
