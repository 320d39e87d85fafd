package users

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"pantry-manager/core/middleware/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	svc, mock := newTestService(t)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, mock
}

func TestHandleRegister(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, mock := newTestApp(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `users`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		req := httptest.NewRequest(fiber.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"alice","password":"hunter2"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("Missing Password", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := httptest.NewRequest(fiber.MethodPost, "/auth/register",
			strings.NewReader(`{"username":"alice"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestHandleLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Token Issued", func(t *testing.T) {
		app, mock := newTestApp(t)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(1, "alice", string(hash))
		mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
			WillReturnRows(rows)

		req := httptest.NewRequest(fiber.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"alice","password":"hunter2"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload struct {
			Token    string `json:"token"`
			Username string `json:"username"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "alice", payload.Username)

		username, err := auth.ParseToken(payload.Token, []byte("test-secret"))
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		app, mock := newTestApp(t)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(1, "alice", string(hash))
		mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
			WillReturnRows(rows)

		req := httptest.NewRequest(fiber.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"alice","password":"wrong"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
