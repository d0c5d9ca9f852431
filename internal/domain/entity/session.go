package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side session record keyed by an opaque token carried in
// a cookie. UserID is nil until a successful signin binds the session to a
// user; signout clears it again. Lifecycle (creation, expiry) is owned by the
// transport layer.
type Session struct {
	Token     uuid.UUID  // Opaque session identifier, also the cookie value.
	UserID    *uuid.UUID // Bound user, nil for anonymous sessions.
	ExpiresAt time.Time  // The exact time when this session becomes invalid.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Anonymous reports whether the session is not bound to any user.
func (s *Session) Anonymous() bool {
	return s.UserID == nil
}
