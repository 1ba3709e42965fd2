package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"blogapi/internal/auth"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s stubVerifier) Verify(string) (*auth.Claims, error) { return s.claims, s.err }

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		verifier   stubVerifier
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token exposes email",
			verifier:   stubVerifier{claims: &auth.Claims{Email: "ed@example.com"}},
			wantStatus: fiber.StatusOK,
			wantBody:   "ed@example.com",
		},
		{
			name:       "missing token",
			verifier:   stubVerifier{err: auth.ErrMissingToken},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "bad token",
			verifier:   stubVerifier{err: errors.New("invalid token: token is expired")},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "not configured",
			verifier:   stubVerifier{err: auth.ErrNotConfigured},
			wantStatus: fiber.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(RequireAuth(tt.verifier))
			app.Get("/me", func(c *fiber.Ctx) error {
				return c.SendString(UserEmail(c))
			})

			req := httptest.NewRequest("GET", "/me", nil)
			req.Header.Set("Authorization", "Bearer token")
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				b, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(b))
			}
		})
	}
}

func TestAPIKey(t *testing.T) {
	app := fiber.New()
	app.Use(APIKey("AIza-key"))
	app.Get("/posts", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/posts", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set(APIKeyHeader, "AIza-key")
	resp, _ = app.Test(req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	open := fiber.New()
	open.Use(APIKey(""))
	open.Get("/posts", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	resp, _ = open.Test(httptest.NewRequest("GET", "/posts", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
