package server

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newHealthApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	sqldb, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	app := CreateServer(&Config{AppName: "test", Timeout: 5, ReadBufferSize: 4096, BodyLimit: 1024, IsProduction: true})
	RegisterHealthController(app, HealthController{Db: bun.NewDB(sqldb, pgdialect.New()), Redis: client})

	return app, mock, mr
}

func getHealth(t *testing.T, app *fiber.App) (int, healthResponse) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	t.Run("all up", func(t *testing.T) {
		app, mock, _ := newHealthApp(t)
		mock.ExpectPing()

		code, body := getHealth(t, app)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, healthResponse{Status: "ok", Postgres: "ok", Redis: "ok"}, body)
	})

	t.Run("redis down is degraded", func(t *testing.T) {
		app, mock, mr := newHealthApp(t)
		mock.ExpectPing()
		mr.Close()

		code, body := getHealth(t, app)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, healthResponse{Status: "degraded", Postgres: "ok", Redis: "down"}, body)
	})

	t.Run("postgres down", func(t *testing.T) {
		app, mock, _ := newHealthApp(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		code, body := getHealth(t, app)
		assert.Equal(t, fiber.StatusServiceUnavailable, code)
		assert.Equal(t, "down", body.Status)
		assert.Equal(t, "down", body.Postgres)
	})
}

func TestLive(t *testing.T) {
	app, _, _ := newHealthApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/livez", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
