package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "carvalue/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func createTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := createTestErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrBadCredentials, "signin failed"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), `"BAD_CREDENTIALS"`)
	assert.Contains(t, rec.Body.String(), `"bad password"`)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := createTestErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	m := createTestErrorMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newEchoContext(req)

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)

	// Internals must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
