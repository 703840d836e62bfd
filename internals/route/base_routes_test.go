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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestHealth_DatabaseDown(t *testing.T) {
	// nothing listens on port 1; Open does not connect until the ping
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1"),
		&gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	app := fiber.New()
	BaseRoutes(app, db, time.Now().Add(-90*time.Second))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body HealthResponse
	require.NoError(t, sonic.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "Server is running", body.Message)
	assert.Equal(t, "error", body.Database)
	assert.GreaterOrEqual(t, body.UptimeSeconds, int64(90))
}
