package postgres

import (
	"context"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/domain/repository"
	"carvalue/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reportRepository implements the repository.ReportRepository interface using GORM.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Create persists a new report entity to the database.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required report information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindByID retrieves a single report by its unique ID.
func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel
	if err := repo.db.WithContext(ctx).First(&reportM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by id")
	}

	return toReportDomain(&reportM), nil
}

// Update modifies an existing report entity in the database.
func (repo *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	// Save writes every column, including a nil Approved; partial updates would
	// silently skip the zero value of *bool.
	if err := repo.db.WithContext(ctx).Save(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update report")
	}

	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindComparable retrieves approved reports for the estimate query: same
// make/model, mileage and location within the filter's windows (inclusive),
// ordered by year closeness then mileage closeness, ties broken by insertion
// order, limited to the filter's candidate count.
func (repo *reportRepository) FindComparable(ctx context.Context, filter repository.ComparableFilter) ([]*entity.Report, error) {
	var reportMs []model.ReportModel

	err := repo.db.WithContext(ctx).
		Where("approved IS TRUE").
		Where("make = ?", filter.Make).
		Where("model = ?", filter.Model).
		Where("mileage BETWEEN ? AND ?", filter.Mileage-filter.MileageWindow, filter.Mileage+filter.MileageWindow).
		Where("lng BETWEEN ? AND ?", filter.Lng-filter.DegreeWindow, filter.Lng+filter.DegreeWindow).
		Where("lat BETWEEN ? AND ?", filter.Lat-filter.DegreeWindow, filter.Lat+filter.DegreeWindow).
		Order(clause.OrderBy{
			Expression: gorm.Expr("ABS(year - ?) ASC, ABS(mileage - ?) ASC, created_at ASC", filter.Year, filter.Mileage),
		}).
		Limit(filter.Limit).
		Find(&reportMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find comparable reports")
	}

	reports := make([]*entity.Report, 0, len(reportMs))
	for i := range reportMs {
		reports = append(reports, toReportDomain(&reportMs[i]))
	}

	return reports, nil
}

// --- Mapper Functions ---

// toReportDomain converts a GORM ReportModel to a domain Report entity.
func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:        data.ID,
		Make:      data.Make,
		Model:     data.Model,
		Year:      data.Year,
		Mileage:   data.Mileage,
		Lng:       data.Lng,
		Lat:       data.Lat,
		Price:     data.Price,
		Approved:  data.Approved,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReportDomain converts a domain Report entity to a GORM ReportModel for persistence.
func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	// CreatedAt rides along so Save, which writes every column, cannot reset
	// it; the column itself is additionally create-only.
	return &model.ReportModel{
		ID:        data.ID,
		Make:      data.Make,
		Model:     data.Model,
		Year:      data.Year,
		Mileage:   data.Mileage,
		Lng:       data.Lng,
		Lat:       data.Lat,
		Price:     data.Price,
		Approved:  data.Approved,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}
