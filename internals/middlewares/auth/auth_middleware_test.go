package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"classroom_backend/internals/constants"
	"classroom_backend/internals/features/users/auth/service"
	helper "classroom_backend/internals/helpers"
)

type stubVerifier map[string]string // token -> role

func (s stubVerifier) Verify(_ context.Context, raw string) (*service.Claims, error) {
	role, ok := s[raw]
	if !ok {
		return nil, helper.Unauthorized(constants.ErrUnauthenticated)
	}
	return &service.Claims{Role: role, RegisteredClaims: jwt.RegisteredClaims{Subject: "user-" + role}}, nil
}

func newApp() *fiber.App {
	v := stubVerifier{"admin-token": constants.RoleAdmin, "teacher-token": constants.RoleTeacher}
	app := fiber.New()
	app.Use(AuthMiddleware(v, zap.NewNop()))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(helper.LocUserID).(string))
	})
	app.Get("/admin", OnlyRoles(constants.RoleErrorAdmin("stats"), constants.AdminOnly...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func call(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestAuthMiddleware(t *testing.T) {
	app := newApp()

	status, _ := call(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "/me", "unknown")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := call(t, app, "/me", "teacher-token")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user-teacher", body)
}

func TestOnlyRoles(t *testing.T) {
	app := newApp()

	status, body := call(t, app, "/admin", "teacher-token")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body, "Only admins can access stats")

	status, _ = call(t, app, "/admin", "admin-token")
	assert.Equal(t, http.StatusNoContent, status)
}

func TestOnlyRoles_WithoutSession(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", OnlyRoles("", constants.RoleAdmin), func(c *fiber.Ctx) error { return nil })

	status, _ := call(t, app, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}
