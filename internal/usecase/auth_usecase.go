// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email    string
	Password string
}

// SigninInput defines the data required for a user to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Signin and Signout take the caller's session as an explicit argument and
// declare its UserID binding as an output: a successful signin writes the
// user's id into the session and persists it, signout clears it. That binding
// is the only state mutation performed outside the store layer.
type AuthUsecase interface {
	// Signup registers a new user. The returned entity carries the stored
	// credential; redaction is the serialization layer's job.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Signin verifies the credentials and binds the session to the user.
	Signin(ctx context.Context, input *SigninInput, session *entity.Session) (*entity.User, error)

	// Signout unbinds the session from its user. Idempotent.
	Signout(ctx context.Context, session *entity.Session) error

	// CurrentUser resolves the user bound to the session, or nil for an
	// anonymous or dangling binding. Absence is not an error.
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error)

	// FindUser retrieves a single user by id.
	FindUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsers retrieves every user registered with the given email, in
	// insertion order.
	FindUsers(ctx context.Context, email string) ([]*entity.User, error)
}
