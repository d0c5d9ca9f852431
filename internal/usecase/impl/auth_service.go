// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/domain/service"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// Signup registers a new user with a freshly salted credential.
// The existence check and the insert run in one transaction; the email unique
// index remains the backstop for concurrent signups racing past the check.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.logger.Info("Starting signup", slog.String("email", input.Email))

	credential, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject the email if any user already holds it.
		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to find users by email")
		}
		if len(existing) > 0 {
			return domainerrors.ErrEmailInUse.WrapMessage("signup failed")
		}

		// 2. Persist the new user with the salted credential.
		newUser := &entity.User{
			Email:    input.Email,
			Password: credential,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.logger.Debug("Signup completed", slog.Any("userID", registeredUser.ID))

	return registeredUser, nil
}

// Signin verifies the supplied credentials and binds the session to the user.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput, session *entity.Session) (*entity.User, error) {
	srv.logger.Debug("Starting signin", slog.String("email", input.Email))

	matches, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.logger.Warn("Signin failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find users by email")
	}
	if len(matches) == 0 {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("signin failed")
	}

	// Email carries a unique index, so more than one match should be
	// unreachable; take the first without promising an ordering.
	user := matches[0]

	// Recompute the hash with the stored salt and compare (constant time).
	if !srv.hasher.Check(input.Password, user.Password) {
		srv.logger.Warn("Signin failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrBadCredentials))

		return nil, errors.Wrap(domainerrors.ErrBadCredentials, "signin failed")
	}

	// Bind the session to the user. This is the declared output of signin.
	userID := user.ID
	session.UserID = &userID
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		srv.logger.Error("Failed to bind session during signin", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to bind session")
	}

	srv.logger.Debug("User signed in", slog.Any("userID", user.ID))

	return user, nil
}

// Signout unbinds the session from its user. Signing out an anonymous session
// is a no-op.
func (srv *authService) Signout(ctx context.Context, session *entity.Session) error {
	if session == nil || session.Anonymous() {
		return nil
	}

	srv.logger.Debug("Signing out", slog.Any("userID", *session.UserID))

	session.UserID = nil
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to unbind session")
	}

	return nil
}

// CurrentUser resolves the user bound to the session. An anonymous session or
// a binding to a since-removed user yields (nil, nil), not an error.
func (srv *authService) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if session == nil || session.Anonymous() {
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, *session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve current user")
	}

	return user, nil
}

// FindUser retrieves a single user by id.
func (srv *authService) FindUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("find user failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// FindUsers retrieves every user registered with the given email. No match is
// an empty slice, not an error.
func (srv *authService) FindUsers(ctx context.Context, email string) ([]*entity.User, error) {
	users, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by email")
	}

	return users, nil
}
