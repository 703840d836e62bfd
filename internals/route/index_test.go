package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"classroom_backend/internals/configs"
	authRepo "classroom_backend/internals/features/users/auth/repository"
	"classroom_backend/internals/features/users/auth/service"
	"classroom_backend/internals/middlewares"
)

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1"),
		&gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	cfg := &configs.Config{
		Server: configs.ServerConfig{APIPrefix: "/api"},
		Auth:   configs.AuthConfig{ProtectAPI: true},
	}
	authSvc := service.NewAuthService(authRepo.NewAuthRepository(db), service.NewTokenService("routes-test-secret", time.Hour), zap.NewNop())

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler(zap.NewNop())})
	SetupRoutes(app, db, cfg, authSvc, zap.NewNop())
	return app
}

func TestSetupRoutes_ProtectedResources(t *testing.T) {
	app := newProtectedApp(t)

	for _, path := range []string{"/api/departments", "/api/users/abc", "/api/stats/overview"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestSetupRoutes_UnknownPathIsNotGuarded(t *testing.T) {
	app := newProtectedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/foo", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	body := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &body), string(raw))
	assert.NotEmpty(t, body["error"])
}
