// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has passed its expiry.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the operations for server-side session persistence.
// A session row is the durable half of the session cookie; the usecase layer
// mutates only its UserID binding.
type SessionRepository interface {
	// Create persists a new session, assigning its token.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a live session by its token.
	// Expired sessions are reported as ErrSessionExpired.
	FindByToken(ctx context.Context, token uuid.UUID) (*entity.Session, error)

	// Update persists a changed session (user binding).
	Update(ctx context.Context, session *entity.Session) error

	// Delete removes a session by token, ending it.
	Delete(ctx context.Context, token uuid.UUID) error

	// DeleteExpired removes all expired sessions. Intended for periodic cleanup.
	DeleteExpired(ctx context.Context) error
}
