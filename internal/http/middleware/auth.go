package middleware

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/auth"
)

const (
	// ClaimsLocalKey is the Fiber locals key holding the verified *auth.Claims.
	ClaimsLocalKey = "auth_claims"
	// APIKeyHeader carries the project API key.
	APIKeyHeader = "X-API-Key"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// claims in locals for handlers.
func RequireAuth(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := v.Verify(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, auth.ErrNotConfigured) {
				return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
			}
			if errors.Is(err, auth.ErrMissingToken) {
				return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// UserEmail returns the authenticated user's email, or "" if none.
func UserEmail(c *fiber.Ctx) string {
	if claims, ok := c.Locals(ClaimsLocalKey).(*auth.Claims); ok && claims != nil {
		return claims.Email
	}
	return ""
}

// APIKey requires the X-API-Key header to match key. An empty key disables the check.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		got := c.Get(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid api key")
		}
		return c.Next()
	}
}
