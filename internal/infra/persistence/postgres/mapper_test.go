package postgres

import (
	"testing"
	"time"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Save writes every column of the model, so a mapper that drops CreatedAt
// would reset the column to the zero time on each update.

func TestFromReportDomain_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 17, 52, 41, 0, time.UTC)
	approved := true
	report := &entity.Report{
		ID:        uuid.New(),
		Make:      "toyota",
		Model:     "corolla",
		Year:      1981,
		Mileage:   10000,
		Price:     10000,
		Approved:  &approved,
		CreatedBy: uuid.New(),
		CreatedAt: createdAt,
	}

	reportM := fromReportDomain(report)

	require.NotNil(t, reportM)
	assert.Equal(t, createdAt, reportM.CreatedAt)

	// Round trip through the persistence model must not lose it either.
	assert.Equal(t, createdAt, toReportDomain(reportM).CreatedAt)
}

func TestFromSessionDomain_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 17, 52, 41, 0, time.UTC)
	userID := uuid.New()
	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    &userID,
		ExpiresAt: createdAt.Add(24 * time.Hour),
		CreatedAt: createdAt,
	}

	sessionM := fromSessionDomain(session)

	require.NotNil(t, sessionM)
	assert.Equal(t, createdAt, sessionM.CreatedAt)
	assert.Equal(t, createdAt, toSessionDomain(sessionM).CreatedAt)
}

func TestFromUserDomain_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 17, 52, 41, 0, time.UTC)
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Password:  "a1b2c3d4e5f60718.deadbeef",
		CreatedAt: createdAt,
	}

	userM := fromUserDomain(user)

	require.NotNil(t, userM)
	assert.Equal(t, createdAt, userM.CreatedAt)
	assert.Equal(t, createdAt, toUserDomain(userM).CreatedAt)
}
