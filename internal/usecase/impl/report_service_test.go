package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	mockRepo "carvalue/internal/mocks/repository"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReportService(ReportServiceParams{
		ReportRepo: reportRepo,
		Logger:     logger,
	})

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
	}
}

func approvedReport(price int) *entity.Report {
	approved := true

	return &entity.Report{
		ID:       uuid.New(),
		Make:     "toyota",
		Model:    "corolla",
		Year:     1981,
		Mileage:  10000,
		Price:    price,
		Approved: &approved,
	}
}

func TestReportService_CreateReport_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com"}
	input := &usecase.CreateReportInput{
		Make:    "toyota",
		Model:   "corolla",
		Year:    1981,
		Mileage: 10000,
		Lng:     121.5,
		Lat:     25.0,
		Price:   10000,
	}

	fx.reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(ctx context.Context, report *entity.Report) {
			report.ID = uuid.New()
		}).
		Return(nil)

	report, err := fx.service.CreateReport(ctx, input, user)

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, user.ID, report.CreatedBy)
	assert.Equal(t, input.Price, report.Price)
	assert.Nil(t, report.Approved, "a fresh report must start without a ruling")
}

func TestReportService_ChangeApproval_Approve(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	stored := &entity.Report{ID: uuid.New(), Make: "toyota", Model: "corolla"}

	fx.reportRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.reportRepo.EXPECT().Update(ctx, stored).Return(nil)

	report, err := fx.service.ChangeApproval(ctx, stored.ID, true)

	require.NoError(t, err)
	require.NotNil(t, report.Approved)
	assert.True(t, *report.Approved)
}

func TestReportService_ChangeApproval_RejectAfterApprove(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	stored := approvedReport(10000)

	fx.reportRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.reportRepo.EXPECT().Update(ctx, stored).Return(nil)

	report, err := fx.service.ChangeApproval(ctx, stored.ID, false)

	require.NoError(t, err)
	require.NotNil(t, report.Approved)
	assert.False(t, *report.Approved, "a later ruling must overwrite the earlier one")
}

func TestReportService_ChangeApproval_NotFound(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reportRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrReportNotFound)

	report, err := fx.service.ChangeApproval(ctx, id, true)

	require.Error(t, err)
	assert.Nil(t, report)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrReportNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestReportService_CreateEstimate_MeanOfComparables(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	query := &usecase.EstimateQuery{
		Make:    "toyota",
		Model:   "corolla",
		Year:    1981,
		Mileage: 10000,
		Lng:     121.5,
		Lat:     25.0,
	}

	fx.reportRepo.EXPECT().
		FindComparable(ctx, repository.ComparableFilter{
			Make:          query.Make,
			Model:         query.Model,
			Year:          query.Year,
			Mileage:       query.Mileage,
			Lng:           query.Lng,
			Lat:           query.Lat,
			MileageWindow: 1000,
			DegreeWindow:  5,
			Limit:         3,
		}).
		Return([]*entity.Report{
			approvedReport(10000),
			approvedReport(12000),
			approvedReport(11000),
		}, nil)

	price, err := fx.service.CreateEstimate(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 11000, price)
}

func TestReportService_CreateEstimate_RoundsMean(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	query := &usecase.EstimateQuery{Make: "toyota", Model: "corolla", Year: 1981, Mileage: 10000}

	fx.reportRepo.EXPECT().
		FindComparable(ctx, mock.AnythingOfType("repository.ComparableFilter")).
		Return([]*entity.Report{
			approvedReport(10000),
			approvedReport(10001),
		}, nil)

	price, err := fx.service.CreateEstimate(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 10001, price, "a .5 mean rounds half away from zero")
}

func TestReportService_CreateEstimate_NoComparables(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	query := &usecase.EstimateQuery{Make: "delorean", Model: "dmc-12", Year: 1981, Mileage: 10000}

	fx.reportRepo.EXPECT().
		FindComparable(ctx, mock.AnythingOfType("repository.ComparableFilter")).
		Return(nil, nil)

	price, err := fx.service.CreateEstimate(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 0, price)
}
