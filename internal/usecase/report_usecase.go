package usecase

import (
	"context"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReportInput defines the data required to submit a new report.
type CreateReportInput struct {
	Make    string
	Model   string
	Year    int
	Mileage int
	Lng     float64
	Lat     float64
	Price   int
}

// EstimateQuery defines the lookup attributes for a price estimate.
type EstimateQuery struct {
	Make    string
	Model   string
	Year    int
	Mileage int
	Lng     float64
	Lat     float64
}

// ReportUsecase defines the interface for report business operations.
type ReportUsecase interface {
	// CreateReport persists a new report owned by user. Approval starts unset.
	CreateReport(ctx context.Context, input *CreateReportInput, user *entity.User) (*entity.Report, error)

	// ChangeApproval rules on a report. Either ruling can be re-applied or
	// reversed by a later call; the last write wins.
	ChangeApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Report, error)

	// CreateEstimate returns the rounded mean price of the nearest approved
	// comparable reports, or 0 when none match.
	CreateEstimate(ctx context.Context, query *EstimateQuery) (int, error)
}
