package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"pantry-manager/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{Secret: secret}))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sess, _ := session.FromCtx(c)
		return c.SendString(sess.Username)
	})
	return app
}

func TestAuth(t *testing.T) {
	app := newTestApp("secret")

	t.Run("Valid Token", func(t *testing.T) {
		token := signToken(t, "secret", jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := signToken(t, "other", jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := signToken(t, "secret", jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestParseToken_MissingSubject(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ParseToken(token, []byte("secret"))
	assert.Error(t, err)
}

func TestParseToken_RejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(raw, []byte("secret"))
	assert.Error(t, err)
}
