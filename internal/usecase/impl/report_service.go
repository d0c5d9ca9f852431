package impl

import (
	"context"
	"log/slog"
	"math"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// estimateMileageWindow is the inclusive odometer band for comparables.
	estimateMileageWindow = 1000
	// estimateDegreeWindow is the lng/lat band, in degrees, for comparables.
	estimateDegreeWindow = 5
	// estimateLimit caps how many comparables feed the mean.
	estimateLimit = 3
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		logger:     params.Logger,
	}
}

// CreateReport persists a new report owned by user. The report starts with no
// approval ruling and is invisible to estimates until an admin approves it.
func (srv *reportService) CreateReport(ctx context.Context, input *usecase.CreateReportInput, user *entity.User) (*entity.Report, error) {
	report := &entity.Report{
		Make:      input.Make,
		Model:     input.Model,
		Year:      input.Year,
		Mileage:   input.Mileage,
		Lng:       input.Lng,
		Lat:       input.Lat,
		Price:     input.Price,
		CreatedBy: user.ID,
	}

	if err := srv.reportRepo.Create(ctx, report); err != nil {
		srv.logger.Error("Failed to create report", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create report")
	}

	srv.logger.Debug("Report created", slog.Any("reportID", report.ID), slog.Any("userID", user.ID))

	return report, nil
}

// ChangeApproval rules on a report. Re-ruling, in either direction, is allowed;
// the last write wins.
func (srv *reportService) ChangeApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Report, error) {
	report, err := srv.reportRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound.WrapMessage("change approval failed")
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	report.Approved = &approved
	if err := srv.reportRepo.Update(ctx, report); err != nil {
		srv.logger.Error("Failed to update report approval", slog.Any("reportID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update report")
	}

	srv.logger.Info("Report approval changed", slog.Any("reportID", id), slog.Bool("approved", approved))

	return report, nil
}

// CreateEstimate returns the rounded mean price of the nearest approved
// comparables, or 0 when none match.
func (srv *reportService) CreateEstimate(ctx context.Context, query *usecase.EstimateQuery) (int, error) {
	comparables, err := srv.reportRepo.FindComparable(ctx, repository.ComparableFilter{
		Make:          query.Make,
		Model:         query.Model,
		Year:          query.Year,
		Mileage:       query.Mileage,
		Lng:           query.Lng,
		Lat:           query.Lat,
		MileageWindow: estimateMileageWindow,
		DegreeWindow:  estimateDegreeWindow,
		Limit:         estimateLimit,
	})
	if err != nil {
		srv.logger.Error("Failed to query comparable reports", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to find comparable reports")
	}

	if len(comparables) == 0 {
		return 0, nil
	}

	var sum int
	for _, report := range comparables {
		sum += report.Price
	}

	return int(math.Round(float64(sum) / float64(len(comparables)))), nil
}
