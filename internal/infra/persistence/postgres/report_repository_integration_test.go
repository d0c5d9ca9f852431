//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"carvalue/internal/domain/entity"
	"carvalue/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run with:
//
//	CARVALUE_TEST_POSTGRES_DSN="host=localhost ..." go test -tags integration ./internal/infra/persistence/postgres/
//
// The schema below avoids the uuid_generate_v7() server default on purpose so
// the tests run against a plain database; every row gets an explicit ID.

var testSchema = []string{
	`DROP TABLE IF EXISTS sessions`,
	`DROP TABLE IF EXISTS reports`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id uuid PRIMARY KEY,
		email varchar(255) UNIQUE NOT NULL,
		password varchar(255) NOT NULL,
		is_admin boolean NOT NULL DEFAULT false,
		created_at timestamptz,
		updated_at timestamptz
	)`,
	`CREATE TABLE reports (
		id uuid PRIMARY KEY,
		make varchar(100) NOT NULL,
		model varchar(100) NOT NULL,
		year integer NOT NULL,
		mileage integer NOT NULL,
		lng double precision NOT NULL,
		lat double precision NOT NULL,
		price integer NOT NULL,
		approved boolean,
		created_by uuid NOT NULL REFERENCES users (id),
		created_at timestamptz,
		updated_at timestamptz
	)`,
	`CREATE TABLE sessions (
		token uuid PRIMARY KEY,
		user_id uuid REFERENCES users (id),
		expires_at timestamptz NOT NULL,
		created_at timestamptz,
		updated_at timestamptz
	)`,
}

// setupTestDB connects to the test database and resets the schema, or skips
// the test when no DSN is configured.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CARVALUE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skipf("CARVALUE_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "a1b2c3d4e5f60718.deadbeef",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedTestReport(t *testing.T, repo repository.ReportRepository, createdBy uuid.UUID, year, mileage int, lng, lat float64, price int, approved *bool) *entity.Report {
	t.Helper()

	report := &entity.Report{
		ID:        uuid.New(),
		Make:      "toyota",
		Model:     "corolla",
		Year:      year,
		Mileage:   mileage,
		Lng:       lng,
		Lat:       lat,
		Price:     price,
		Approved:  approved,
		CreatedBy: createdBy,
	}
	require.NoError(t, repo.Create(context.Background(), report))

	return report
}

func approvedFlag(v bool) *bool {
	return &v
}

func TestReportRepository_UpdateKeepsCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedTestUser(t, db, "seller@example.com")
	repo := NewReportRepository(db)

	created := seedTestReport(t, repo, user.ID, 1981, 10000, 45.0, 45.0, 10000, nil)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, stored.CreatedAt.IsZero())

	stored.Approved = approvedFlag(true)
	require.NoError(t, repo.Update(ctx, stored))

	updated, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.Approved)
	assert.True(t, *updated.Approved)

	assert.False(t, updated.CreatedAt.IsZero())
	assert.WithinDuration(t, stored.CreatedAt, updated.CreatedAt, time.Second)

	// Approval must not disturb the rest of the row.
	assert.Equal(t, stored.Make, updated.Make)
	assert.Equal(t, stored.Model, updated.Model)
	assert.Equal(t, stored.Year, updated.Year)
	assert.Equal(t, stored.Mileage, updated.Mileage)
	assert.Equal(t, stored.Price, updated.Price)
	assert.Equal(t, stored.CreatedBy, updated.CreatedBy)
}

func TestReportRepository_FindComparable_ApprovedOnly(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedTestUser(t, db, "seller@example.com")
	repo := NewReportRepository(db)

	approved := seedTestReport(t, repo, user.ID, 1981, 10000, 0, 0, 10000, approvedFlag(true))
	seedTestReport(t, repo, user.ID, 1981, 10000, 0, 0, 20000, nil)                // pending
	seedTestReport(t, repo, user.ID, 1981, 10000, 0, 0, 30000, approvedFlag(false)) // rejected

	comparables, err := repo.FindComparable(ctx, repository.ComparableFilter{
		Make: "toyota", Model: "corolla", Year: 1981, Mileage: 10000,
		MileageWindow: 1000, DegreeWindow: 5, Limit: 3,
	})
	require.NoError(t, err)

	require.Len(t, comparables, 1)
	assert.Equal(t, approved.ID, comparables[0].ID)
	assert.Equal(t, 10000, comparables[0].Price)
}

func TestReportRepository_FindComparable_WindowBoundaries(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedTestUser(t, db, "seller@example.com")
	repo := NewReportRepository(db)

	inside := []uuid.UUID{
		seedTestReport(t, repo, user.ID, 1981, 11000, 0, 0, 100, approvedFlag(true)).ID, // mileage edge
		seedTestReport(t, repo, user.ID, 1981, 9000, 0, 0, 200, approvedFlag(true)).ID,  // mileage edge
		seedTestReport(t, repo, user.ID, 1981, 10000, 5, -5, 300, approvedFlag(true)).ID, // lng/lat edges
	}
	seedTestReport(t, repo, user.ID, 1981, 11001, 0, 0, 400, approvedFlag(true))  // past mileage window
	seedTestReport(t, repo, user.ID, 1981, 10000, 5.1, 0, 500, approvedFlag(true)) // past lng window
	seedTestReport(t, repo, user.ID, 1981, 10000, 0, -5.1, 600, approvedFlag(true)) // past lat window
	center := seedTestReport(t, repo, user.ID, 1981, 10000, 0, 0, 700, approvedFlag(true))

	honda := &entity.Report{
		ID: uuid.New(), Make: "honda", Model: "corolla", Year: 1981, Mileage: 10000,
		Price: 800, Approved: approvedFlag(true), CreatedBy: user.ID,
	}
	require.NoError(t, repo.Create(ctx, honda))

	comparables, err := repo.FindComparable(ctx, repository.ComparableFilter{
		Make: "toyota", Model: "corolla", Year: 1981, Mileage: 10000,
		MileageWindow: 1000, DegreeWindow: 5, Limit: 10,
	})
	require.NoError(t, err)

	found := make([]uuid.UUID, 0, len(comparables))
	for _, comparable := range comparables {
		found = append(found, comparable.ID)
	}
	for _, id := range append(inside, center.ID) {
		assert.Contains(t, found, id)
	}
	assert.Len(t, comparables, 4)
	assert.NotContains(t, found, honda.ID)
}

func TestReportRepository_FindComparable_OrderingAndLimit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := seedTestUser(t, db, "seller@example.com")
	repo := NewReportRepository(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := seedTestReport(t, repo, user.ID, 1981, 10000, 0, 0, 100, approvedFlag(true))
	second := seedTestReport(t, repo, user.ID, 1981, 10000, 0, 0, 200, approvedFlag(true))
	third := seedTestReport(t, repo, user.ID, 1980, 10000, 0, 0, 300, approvedFlag(true))
	seedTestReport(t, repo, user.ID, 1984, 10000, 0, 0, 400, approvedFlag(true)) // pushed out by the limit

	// first and second tie on year and mileage; insertion order must decide.
	require.NoError(t, db.Exec("UPDATE reports SET created_at = ? WHERE id = ?", base, first.ID).Error)
	require.NoError(t, db.Exec("UPDATE reports SET created_at = ? WHERE id = ?", base.Add(time.Minute), second.ID).Error)

	comparables, err := repo.FindComparable(ctx, repository.ComparableFilter{
		Make: "toyota", Model: "corolla", Year: 1981, Mileage: 10000,
		MileageWindow: 1000, DegreeWindow: 5, Limit: 3,
	})
	require.NoError(t, err)

	require.Len(t, comparables, 3)
	assert.Equal(t, first.ID, comparables[0].ID)
	assert.Equal(t, second.ID, comparables[1].ID)
	assert.Equal(t, third.ID, comparables[2].ID)
}
