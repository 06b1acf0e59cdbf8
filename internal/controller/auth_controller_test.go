package controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/service"
	"github.com/DhairyaS450/personal-website-sub000/pkg/credential"
	"github.com/DhairyaS450/personal-website-sub000/pkg/ratelimit"
)

func newAuthTestApp(t *testing.T, limiter ratelimit.Limiter) *fiber.App {
	t.Helper()
	issuer := credential.NewSharedTokenIssuer("admin123", "", testAdminToken)
	authService := service.NewAuthService(issuer, logger.NopLogger{})

	app := fiber.New()
	NewAuthController(authService, limiter).RegisterRoutes(app)
	return app
}

func postAuth(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestLoginWithCorrectPassword(t *testing.T) {
	app := newAuthTestApp(t, ratelimit.AllowAll{})

	res := postAuth(t, app, `{"password":"admin123"}`)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, testAdminToken, body["token"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newAuthTestApp(t, ratelimit.AllowAll{})

	for _, payload := range []string{
		`{"password":"admin124"}`, // near miss
		`{"password":""}`,
		`{}`,
		`not json`,
	} {
		res := postAuth(t, app, payload)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "payload %q", payload)
		assert.Equal(t, "Invalid credentials", decodeBody(t, res)["error"], "payload %q", payload)
	}
}

type denyAll struct{}

func (denyAll) Allow(ctx context.Context, key string) bool { return false }

func TestLoginRateLimited(t *testing.T) {
	app := newAuthTestApp(t, denyAll{})

	res := postAuth(t, app, `{"password":"admin123"}`)

	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
}
