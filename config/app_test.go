package config_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"tour-booking-api/config"
	"tour-booking-api/config/common"
	"tour-booking-api/config/logger"
	"tour-booking-api/entity"
	mocks "tour-booking-api/mocks/security"
	"tour-booking-api/repository"
	"tour-booking-api/security"
	"tour-booking-api/util/testdb"
)

type testServer struct {
	t        *testing.T
	app      *fiber.App
	db       *gorm.DB
	jwt      *security.JWT
	identity *mocks.IdentityProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := common.NewConfig(viper.New())
	log := config.NewLogger(cfg)
	log.SetOutput(io.Discard)

	server := &testServer{
		t:        t,
		app:      config.NewFiber(cfg, log),
		db:       testdb.New(t),
		jwt:      security.NewJWTWithSecret([]byte("e2e-secret")),
		identity: mocks.NewIdentityProvider(t),
	}

	config.App(&config.AppConfig{
		App:      server.app,
		Validate: config.NewValidator(),
		Logger:   log,
		DBConfig: &config.DBConfig{DB: server.db, AppLogger: logger.NewNopLogger()},
		JWT:      server.jwt,
		Sessions: repository.NewSessionRepository(nil),
		Identity: server.identity,
	})
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := s.app.Test(request, -1)
	require.NoError(s.t, err)
	defer response.Body.Close()

	var result envelope
	require.NoError(s.t, json.NewDecoder(response.Body).Decode(&result))
	return response.StatusCode, result
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(raw, &value))
	return value
}

type authPayload struct {
	User struct {
		ID uint `json:"id"`
	} `json:"user"`
	Session security.Session `json:"session"`
}

// signUp registers a user through the API; the mocked provider issues a real token.
func (s *testServer) signUp(email, name string) (uint, string) {
	s.t.Helper()

	subject := uuid.NewString()
	token, err := s.jwt.GenerateToken(subject, uuid.NewString(), email, time.Hour)
	require.NoError(s.t, err)

	s.identity.On("SignUp", mock.Anything, email, "secret1", name).
		Return(&security.IdentityUser{ID: subject, Email: email}, &security.Session{AccessToken: token, TokenType: "bearer"}, nil).
		Once()

	status, body := s.do(fiber.MethodPost, "/api/v1/user/sign-up", "", fiber.Map{"email": email, "password": "secret1", "name": name})
	require.Equal(s.t, fiber.StatusCreated, status, body.Message)

	auth := decode[authPayload](s.t, body.Data)
	return auth.User.ID, auth.Session.AccessToken
}

func TestHelloWorld(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(fiber.MethodGet, "/", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, body.Success)
	assert.Equal(t, "Hello World!", body.Message)
}

func TestNewFiberWithWildcardOrigins(t *testing.T) {
	v := viper.New()
	v.Set("CORS_ORIGINS", "*")
	cfg := common.NewConfig(v)
	log := config.NewLogger(cfg)
	log.SetOutput(io.Discard)

	assert.NotPanics(t, func() { config.NewFiber(cfg, log) })
}

func TestSignUpThenUseProtectedRoutes(t *testing.T) {
	s := newTestServer(t)
	userID, token := s.signUp("ana@example.com", "Ana")

	status, body := s.do(fiber.MethodGet, "/api/v1/user/me", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	me := decode[map[string]interface{}](t, body.Data)
	assert.EqualValues(t, userID, me["id"])
	assert.NotContains(t, me, "password")

	status, _ = s.do(fiber.MethodGet, "/api/v1/user/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = s.do(fiber.MethodGet, "/api/v1/user/get/abc", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid user id", body.Message)

	status, _ = s.do(fiber.MethodGet, "/api/v1/user/get/999", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDuplicateSignUpIsRejected(t *testing.T) {
	s := newTestServer(t)
	s.signUp("ana@example.com", "Ana")

	status, body := s.do(fiber.MethodPost, "/api/v1/user/sign-up", "", fiber.Map{"email": "ana@example.com", "password": "secret1", "name": "Ana"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Equal(t, "email is already registered", body.Message)
}

func TestUpdateOtherUserIsForbidden(t *testing.T) {
	s := newTestServer(t)
	anaID, _ := s.signUp("ana@example.com", "Ana")
	_, bobToken := s.signUp("bob@example.com", "Bob")

	status, body := s.do(fiber.MethodPatch, fmt.Sprintf("/api/v1/user/update/%d", anaID), bobToken, fiber.Map{"name": "Bob was here"})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "you can only update your own profile", body.Message)

	var ana entity.User
	require.NoError(t, s.db.First(&ana, anaID).Error)
	assert.Equal(t, "Ana", ana.Name)
}

func TestSignInReturnsSignedUpUser(t *testing.T) {
	s := newTestServer(t)
	userID, token := s.signUp("ana@example.com", "Ana")
	s.identity.On("SignIn", mock.Anything, "ana@example.com", "secret1").
		Return(&security.IdentityUser{Email: "ana@example.com"}, &security.Session{AccessToken: token}, nil).
		Once()

	status, body := s.do(fiber.MethodPost, "/api/v1/user/sign-in", "", fiber.Map{"email": "Ana@Example.com", "password": "secret1"})
	require.Equal(t, fiber.StatusOK, status, body.Message)
	auth := decode[authPayload](t, body.Data)
	assert.Equal(t, userID, auth.User.ID)
	assert.Equal(t, token, auth.Session.AccessToken)
}

func TestUpdatePasswordThenSignIn(t *testing.T) {
	s := newTestServer(t)
	userID, token := s.signUp("ana@example.com", "Ana")
	password := "another1"
	s.identity.On("UpdateCredentials", mock.Anything, token, (*string)(nil), &password).Return(nil).Once()

	status, body := s.do(fiber.MethodPatch, fmt.Sprintf("/api/v1/user/update/%d", userID), token, fiber.Map{"password": password})
	require.Equal(t, fiber.StatusOK, status, body.Message)

	s.identity.On("SignIn", mock.Anything, "ana@example.com", password).
		Return(&security.IdentityUser{}, &security.Session{AccessToken: token}, nil).
		Once()
	status, body = s.do(fiber.MethodPost, "/api/v1/user/sign-in", "", fiber.Map{"email": "ana@example.com", "password": password})
	require.Equal(t, fiber.StatusOK, status, body.Message)
	assert.Equal(t, userID, decode[authPayload](t, body.Data).User.ID)

	status, _ = s.do(fiber.MethodPost, "/api/v1/user/sign-in", "", fiber.Map{"email": "ana@example.com", "password": "secret1"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestUpdateCredentialsRejectedByProvider(t *testing.T) {
	s := newTestServer(t)
	userID, token := s.signUp("ana@example.com", "Ana")
	s.identity.On("UpdateCredentials", mock.Anything, token, mock.Anything, mock.Anything).
		Return(errors.New("response status code 422")).Once()

	status, body := s.do(fiber.MethodPatch, fmt.Sprintf("/api/v1/user/update/%d", userID), token, fiber.Map{"email": "new@example.com"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "failed to update credentials", body.Message)

	var ana entity.User
	require.NoError(t, s.db.First(&ana, userID).Error)
	assert.Equal(t, "ana@example.com", ana.Email)
}

func TestProtectedWritesRequireToken(t *testing.T) {
	s := newTestServer(t)
	userID, _ := s.signUp("ana@example.com", "Ana")

	status, body := s.do(fiber.MethodPost, "/api/v1/popular/post", "", fiber.Map{"title": "Bali", "price": 120})
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	popular := decode[entity.Popular](t, body.Data)

	status, body = s.do(fiber.MethodPost, "/api/v1/chat/send", "", fiber.Map{"message": "hello"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, body.Success)

	status, body = s.do(fiber.MethodPost, "/api/v1/favorite/add", "", fiber.Map{"popularId": popular.ID, "userId": userID})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, body.Success)

	var messages, favorites int64
	require.NoError(t, s.db.Model(&entity.Message{}).Count(&messages).Error)
	require.NoError(t, s.db.Model(&entity.Favorite{}).Count(&favorites).Error)
	assert.Zero(t, messages)
	assert.Zero(t, favorites)
}

func TestCatalogAndFavorites(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signUp("ana@example.com", "Ana")

	status, body := s.do(fiber.MethodPost, "/api/v1/category/post", "", fiber.Map{"name": "Beach"})
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	category := decode[entity.Category](t, body.Data)

	status, body = s.do(fiber.MethodPost, "/api/v1/popular/post", "", fiber.Map{"title": "Bali", "price": 120, "categoryId": category.ID})
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	popular := decode[entity.Popular](t, body.Data)

	status, body = s.do(fiber.MethodPost, "/api/v1/favorite/add", token, fiber.Map{"popularId": popular.ID})
	require.Equal(t, fiber.StatusCreated, status, body.Message)

	status, body = s.do(fiber.MethodPost, "/api/v1/favorite/add", token, fiber.Map{"popularId": popular.ID})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "already in favorites", body.Message)

	status, body = s.do(fiber.MethodGet, "/api/v1/favorite/get", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	favorites := decode[[]entity.Favorite](t, body.Data)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].Popular)
	require.NotNil(t, favorites[0].Popular.Category)
	assert.Equal(t, "Beach", favorites[0].Popular.Category.Name)

	status, body = s.do(fiber.MethodDelete, fmt.Sprintf("/api/v1/popular/delete/%d", popular.ID), "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, "Bali", decode[entity.Popular](t, body.Data).Title)

	status, body = s.do(fiber.MethodGet, "/api/v1/favorite/get", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, "[]", string(body.Data))
}

func TestUpdatePopularNullCategoryDetaches(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(fiber.MethodPost, "/api/v1/category/post", "", fiber.Map{"name": "Beach"})
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	category := decode[entity.Category](t, body.Data)

	status, body = s.do(fiber.MethodPost, "/api/v1/popular/post", "", fiber.Map{"title": "Bali", "price": 120, "categoryId": category.ID})
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	popular := decode[entity.Popular](t, body.Data)
	path := fmt.Sprintf("/api/v1/popular/update/%d", popular.ID)

	status, body = s.do(fiber.MethodPut, path, "", fiber.Map{"price": 99})
	require.Equal(t, fiber.StatusOK, status, body.Message)
	assert.NotNil(t, decode[entity.Popular](t, body.Data).CategoryID)

	status, body = s.do(fiber.MethodPut, path, "", fiber.Map{"categoryId": nil})
	require.Equal(t, fiber.StatusOK, status, body.Message)
	assert.Nil(t, decode[entity.Popular](t, body.Data).CategoryID)
}

func TestReviewRatingOutOfRange(t *testing.T) {
	s := newTestServer(t)
	userID, _ := s.signUp("ana@example.com", "Ana")

	status, body := s.do(fiber.MethodPost, "/api/v1/popular/post", "", fiber.Map{"title": "Bromo", "price": 50})
	require.Equal(t, fiber.StatusCreated, status)
	popular := decode[entity.Popular](t, body.Data)

	status, body = s.do(fiber.MethodPost, "/api/v1/review/post", "", fiber.Map{"rating": 7, "userId": userID, "popularId": popular.ID})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "rating must be between 1 and 5", body.Message)

	status, _ = s.do(fiber.MethodPost, "/api/v1/review/post", "", fiber.Map{"rating": 5, "userId": userID, "popularId": popular.ID})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestPrivateMessageCreatesNotification(t *testing.T) {
	s := newTestServer(t)
	_, aliceToken := s.signUp("alice@example.com", "Alice")
	bobID, bobToken := s.signUp("bob@example.com", "Bob")

	status, body := s.do(fiber.MethodPost, "/api/v1/chat/private/send", aliceToken, fiber.Map{"receiverId": bobID, "message": "  hi bob  "})
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	assert.Equal(t, "hi bob", decode[entity.PrivateMessage](t, body.Data).Message)

	status, body = s.do(fiber.MethodGet, "/api/v1/notification/", bobToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	notifications := decode[[]entity.Notification](t, body.Data)
	require.Len(t, notifications, 1)
	assert.Equal(t, "You have a new message", notifications[0].Title)

	status, body = s.do(fiber.MethodPatch, "/api/v1/notification/read", bobToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, decode[map[string]int64](t, body.Data)["updated"])

	status, body = s.do(fiber.MethodGet, "/api/v1/chat/last-messages", bobToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	lastMessages := decode[[]map[string]interface{}](t, body.Data)
	require.Len(t, lastMessages, 1)
	assert.Equal(t, "hi bob", lastMessages[0]["lastMessage"])
}

func TestRoutingStatuses(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(fiber.MethodDelete, "/api/v1/review/get", "", nil)
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
	assert.False(t, body.Success)

	status, body = s.do(fiber.MethodDelete, "/api/v1/category/delete/abc", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid category id", body.Message)

	status, _ = s.do(fiber.MethodPut, "/api/v1/available/put", "", fiber.Map{"title": "No id"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = s.do(fiber.MethodGet, "/api/v1/chat/get-all", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
