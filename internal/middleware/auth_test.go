package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"cardcheck/internal/logger"
	"cardcheck/internal/models"
	"cardcheck/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "middleware-test-secret"
	testIssuer = "test"
)

func newTestApp(permission string) *fiber.App {
	app := fiber.New()
	auth := NewAuthMiddleware(testSecret, testIssuer, logger.Nop())
	app.Get("/cards", auth.Handler, HasPermission(permission), func(c *fiber.Ctx) error {
		claims, err := utils.GetUserClaims(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func token(t *testing.T, secret string, ttl time.Duration, role string, perms ...string) string {
	t.Helper()
	return issuedToken(t, secret, testIssuer, ttl, role, perms...)
}

func issuedToken(t *testing.T, secret, issuer string, ttl time.Duration, role string, perms ...string) string {
	t.Helper()
	tok, err := utils.GenerateToken(secret, issuer, ttl, &models.UserClaims{
		UserID:      42,
		Role:        role,
		Permissions: perms,
	})
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + token(t, "other-secret", time.Minute, "user", models.PermissionCardRead), fiber.StatusUnauthorized},
		{"wrong issuer", "Bearer " + issuedToken(t, testSecret, "elsewhere", time.Minute, "user", models.PermissionCardRead), fiber.StatusUnauthorized},
		{"expired", "Bearer " + token(t, testSecret, -time.Minute, "user", models.PermissionCardRead), fiber.StatusUnauthorized},
		{"missing permission", "Bearer " + token(t, testSecret, time.Minute, "merchant", models.PermissionCardCheck), fiber.StatusForbidden},
		{"granted", "Bearer " + token(t, testSecret, time.Minute, "user", models.PermissionCardRead), fiber.StatusOK},
		{"admin bypass", "Bearer " + token(t, testSecret, time.Minute, "admin"), fiber.StatusOK},
	}

	app := newTestApp(models.PermissionCardRead)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/cards", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHasPermission_NoClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/", HasPermission(models.PermissionCardRead), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
