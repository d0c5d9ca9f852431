package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"carvalue/config"
	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys used to pass the resolved session and user to handlers.
const (
	sessionContextKey     = "session"
	currentUserContextKey = "currentUser"
)

// SessionMiddleware attaches a server-side session to every request and
// resolves the user it is bound to.
//
// The cookie carries only an opaque token; the session row is the source of
// truth. A missing, malformed, unknown or expired token yields a fresh
// anonymous session and a new cookie, never an error.
type SessionMiddleware struct {
	sessionRepo repository.SessionRepository
	authUc      usecase.AuthUsecase
	cfg         *config.Config
	logger      *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionRepo repository.SessionRepository, authUc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessionRepo: sessionRepo,
		authUc:      authUc,
		cfg:         cfg,
		logger:      logger,
	}
}

// LoadSession loads or creates the request's session and resolves its user.
// It must run before any guard or handler that reads the session.
func (m *SessionMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		session, err := m.resolveSession(c)
		if err != nil {
			return errors.Wrap(err, "failed to resolve session")
		}
		c.Set(sessionContextKey, session)

		user, err := m.authUc.CurrentUser(ctx, session)
		if err != nil {
			return errors.Wrap(err, "failed to resolve current user")
		}
		if user != nil {
			c.Set(currentUserContextKey, user)
		}

		return next(c)
	}
}

// Authenticate rejects requests whose session is not bound to a user.
// It must be used AFTER LoadSession.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if UserFromContext(c) == nil {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return next(c)
	}
}

// RequireAdmin rejects requests whose user lacks the admin flag.
// It must be used AFTER Authenticate.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := UserFromContext(c)
		if user == nil || !user.IsAdmin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// resolveSession returns the live session for the request cookie, or creates
// a fresh anonymous one and sets the cookie.
func (m *SessionMiddleware) resolveSession(c echo.Context) (*entity.Session, error) {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(m.cfg.Session.CookieName); err == nil {
		token, parseErr := uuid.Parse(cookie.Value)
		if parseErr == nil {
			session, findErr := m.sessionRepo.FindByToken(ctx, token)
			if findErr == nil {
				return session, nil
			}
			switch {
			case errors.Is(findErr, repository.ErrSessionExpired):
				// Drop the dead row now rather than wait for the sweeper.
				if delErr := m.sessionRepo.Delete(ctx, token); delErr != nil {
					m.logger.Warn("Failed to delete expired session", slog.Any("token", token), slog.Any("error", delErr))
				}
			case errors.Is(findErr, repository.ErrSessionNotFound):
				// Fall through to a fresh session.
			default:
				return nil, findErr
			}
		}
	}

	session := &entity.Session{
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(m.cfg.Session.TTL),
	}
	if err := m.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	m.logger.Debug("Created anonymous session", slog.Any("token", session.Token))

	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    session.Token.String(),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return session, nil
}

// SessionFromContext returns the session attached by LoadSession, or nil.
func SessionFromContext(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)

	return session
}

// UserFromContext returns the signed-in user, or nil for anonymous requests.
func UserFromContext(c echo.Context) *entity.User {
	user, _ := c.Get(currentUserContextKey).(*entity.User)

	return user
}
