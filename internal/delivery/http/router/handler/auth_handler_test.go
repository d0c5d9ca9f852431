package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carvalue/internal/delivery/http/validator"
	"carvalue/internal/domain/entity"
	mockUc "carvalue/internal/mocks/usecase"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler *AuthHandler
	uc      *mockUc.MockAuthUsecase
	echo    *echo.Echo
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	uc := mockUc.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return authHandlerFixtures{
		handler: NewAuthHandler(uc, logger),
		uc:      uc,
		echo:    e,
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	req := jsonRequest(http.MethodPost, "/auth/signup", `{"email":"test@example.com","password":"Password123!"}`)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.uc.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Email: "test@example.com", Password: "Password123!"}).
		Return(&entity.User{
			ID:       uuid.New(),
			Email:    "test@example.com",
			Password: "a1b2c3d4e5f60718.deadbeef",
		}, nil)

	err := fx.handler.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")

	// The stored credential must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "deadbeef")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	fx := createTestAuthHandler(t)

	req := jsonRequest(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"Password123!"}`)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Signin_UsesRequestSession(t *testing.T) {
	fx := createTestAuthHandler(t)

	session := &entity.Session{Token: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	req := jsonRequest(http.MethodPost, "/auth/signin", `{"email":"test@example.com","password":"Password123!"}`)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set("session", session)

	fx.uc.EXPECT().
		Signin(mock.Anything, &usecase.SigninInput{Email: "test@example.com", Password: "Password123!"}, session).
		Return(&entity.User{ID: uuid.New(), Email: "test@example.com"}, nil)

	err := fx.handler.Signin(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_FindUser_Success(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Password: "a1b2c3d4e5f60718.deadbeef",
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/"+user.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.String())

	fx.uc.EXPECT().FindUser(mock.Anything, user.ID).Return(user, nil)

	err := fx.handler.FindUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.NotContains(t, rec.Body.String(), "deadbeef")
}

func TestAuthHandler_FindUser_InvalidID(t *testing.T) {
	fx := createTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := fx.handler.FindUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_FindUsers_ByEmail(t *testing.T) {
	fx := createTestAuthHandler(t)

	users := []*entity.User{
		{ID: uuid.New(), Email: "dup@example.com", Password: "s1.h1"},
		{ID: uuid.New(), Email: "dup@example.com", Password: "s2.h2"},
	}

	req := httptest.NewRequest(http.MethodGet, "/auth?email=dup%40example.com", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.uc.EXPECT().FindUsers(mock.Anything, "dup@example.com").Return(users, nil)

	err := fx.handler.FindUsers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), users[0].ID.String())
	assert.Contains(t, rec.Body.String(), users[1].ID.String())
	assert.NotContains(t, rec.Body.String(), "s1.h1")
}

func TestAuthHandler_WhoAmI(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com", IsAdmin: true}

	req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.Set("currentUser", user)

	err := fx.handler.WhoAmI(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), `"isAdmin":true`)
}
