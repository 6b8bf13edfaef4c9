package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tams-dashboard/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(m *auth.JWTManager) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", SessionMiddleware(m, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	return app
}

func TestSessionMiddleware_AcceptsValidToken(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)
	token, err := m.GenerateToken("abc")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := newApp(m).Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", string(body))
}

func TestSessionMiddleware_RejectsMissingAndInvalid(t *testing.T) {
	app := newApp(auth.NewJWTManager("secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer nope")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
