package middlewares

import (
	"context"
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

	"classroom_backend/internals/configs"
)

func newTestApp() *fiber.App {
	cfg := &configs.Config{Server: configs.ServerConfig{
		CORSOrigins:    []string{"http://localhost:5173"},
		RequestTimeout: time.Second,
	}}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	SetupMiddlewares(app, cfg, zap.NewNop())

	app.Get("/ok", func(c *fiber.Ctx) error {
		_, hasDeadline := c.UserContext().Deadline()
		return c.JSON(fiber.Map{"deadline": hasDeadline})
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return out
}

func TestRequestID(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, true, decode(t, resp)["deadline"])

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", decode(t, resp)["error"])
}

func TestUnknownRoute(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, decode(t, resp)["error"])
}

func TestRequestTimeout(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Use(RequestTimeout(20 * time.Millisecond))
	var got error
	app.Get("/slow", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		got = c.UserContext().Err()
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/slow", nil), 2000)
	require.NoError(t, err)
	assert.ErrorIs(t, got, context.DeadlineExceeded)
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPatch)

	resp, err := newTestApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/sign-in", LoginRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sign-in", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sign-in", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, decode(t, resp)["error"])
}
