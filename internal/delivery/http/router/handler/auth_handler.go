// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"carvalue/internal/delivery/http/middleware"
	"carvalue/internal/delivery/http/response"
	"carvalue/internal/domain/entity"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// credentialsRequest is the payload for both signup and signin.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// userResponse is the public view of a user. The stored credential never
// leaves the service.
type userResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

// Signup handles the user registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input credentialsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// Signin handles the sign-in request and binds the caller's session.
func (h *AuthHandler) Signin(c echo.Context) error {
	var input credentialsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	session := middleware.SessionFromContext(c)
	user, err := h.uc.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    input.Email,
		Password: input.Password,
	}, session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Signin successful")
}

// Signout unbinds the caller's session from its user.
func (h *AuthHandler) Signout(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if err := h.uc.Signout(c.Request().Context(), session); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signout successful")
}

// WhoAmI returns the user bound to the caller's session.
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	user := middleware.UserFromContext(c)

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// FindUser returns a single user by id.
func (h *AuthHandler) FindUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.FindUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// FindUsers lists the users registered with the given email.
func (h *AuthHandler) FindUsers(c echo.Context) error {
	users, err := h.uc.FindUsers(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
