package postgres

import (
	"context"
	"time"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.Token = sessionM.Token
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindByToken retrieves a live session by its token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token")
	}

	session := toSessionDomain(&sessionM)

	if session.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// Update persists a changed session.
func (repo *sessionRepository) Update(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	// Save writes every column so clearing UserID back to NULL sticks.
	if err := repo.db.WithContext(ctx).Save(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update session")
	}

	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// Delete removes a session by token.
func (repo *sessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "token = ?", token).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired removes all expired sessions.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete expired sessions")
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel for persistence.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
