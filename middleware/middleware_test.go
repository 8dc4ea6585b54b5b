package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tour-booking-api/dto/res"
	"tour-booking-api/exception"
	"tour-booking-api/middleware"
	"tour-booking-api/security"
	"tour-booking-api/usecase"
)

// stubUsers resolves one known subject; every other call panics through the nil interface.
type stubUsers struct {
	usecase.UserUsecase
	subject string
	userID  uint
}

func (s stubUsers) Authenticate(_ context.Context, claims *security.Claims) (uint, error) {
	if claims.Subject == s.subject {
		return s.userID, nil
	}
	return 0, exception.Unauthorized("user is not registered")
}

func newApp(t *testing.T, jwtSecurity *security.JWT, users usecase.UserUsecase) *fiber.App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	m := middleware.NewMiddleware(jwtSecurity, users, log)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log)})
	app.Get("/private", m.JWTProtected, m.ExtractUserID, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":     middleware.UserID(c),
			"supabaseId": c.Locals(middleware.LocalSupabaseID),
			"session":    middleware.Claims(c).SessionID,
			"hasToken":   middleware.AccessToken(c) != "",
		})
	})
	return app
}

func call(t *testing.T, app *fiber.App, token string) (int, map[string]interface{}) {
	t.Helper()
	request := httptest.NewRequest(fiber.MethodGet, "/private", nil)
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	response, err := app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	return response.StatusCode, body
}

func TestAuthGate(t *testing.T) {
	jwtSecurity := security.NewJWTWithSecret([]byte("gate-secret"))
	subject := uuid.NewString()
	app := newApp(t, jwtSecurity, stubUsers{subject: subject, userID: 7})

	t.Run("missing header", func(t *testing.T) {
		status, body := call(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "missing or invalid token", body["message"])
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := security.NewJWTWithSecret([]byte("other")).GenerateToken(subject, "s1", "a@example.com", time.Hour)
		require.NoError(t, err)
		status, _ := call(t, app, token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwtSecurity.GenerateToken(subject, "s1", "a@example.com", -time.Minute)
		require.NoError(t, err)
		status, _ := call(t, app, token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token, err := jwtSecurity.GenerateToken("42", "s1", "a@example.com", time.Hour)
		require.NoError(t, err)
		status, body := call(t, app, token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "invalid token claims", body["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		token, err := jwtSecurity.GenerateToken(uuid.NewString(), "s1", "a@example.com", time.Hour)
		require.NoError(t, err)
		status, body := call(t, app, token)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "user is not registered", body["message"])
	})

	t.Run("valid", func(t *testing.T) {
		token, err := jwtSecurity.GenerateToken(subject, "s1", "a@example.com", time.Hour)
		require.NoError(t, err)
		status, body := call(t, app, token)
		assert.Equal(t, fiber.StatusOK, status)
		assert.EqualValues(t, 7, body["userId"])
		assert.Equal(t, subject, body["supabaseId"])
		assert.Equal(t, "s1", body["session"])
		assert.Equal(t, true, body["hasToken"])
	})
}

func TestErrorHandler(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log)})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return exception.Forbidden("you can only update your own profile")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return exception.Internal(errors.New("record leaked"))
	})

	tests := []struct {
		method  string
		path    string
		status  int
		message string
	}{
		{fiber.MethodGet, "/forbidden", fiber.StatusForbidden, "you can only update your own profile"},
		{fiber.MethodGet, "/boom", fiber.StatusInternalServerError, "internal server error"},
		{fiber.MethodGet, "/internal", fiber.StatusInternalServerError, "internal server error"},
		{fiber.MethodDelete, "/forbidden", fiber.StatusMethodNotAllowed, "Method Not Allowed"},
		{fiber.MethodGet, "/missing", fiber.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			response, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil), -1)
			require.NoError(t, err)
			defer response.Body.Close()
			assert.Equal(t, tt.status, response.StatusCode)

			var body res.ErrorResponse
			require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
			assert.False(t, body.Success)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			}
		})
	}
}
