// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"carvalue/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReportNotFound is a domain-specific error returned when a report is not found.
var ErrReportNotFound = errors.New("report not found")

// ComparableFilter describes the estimate lookup: approved reports for the
// same make/model, mileage within ±MileageWindow inclusive, location within
// ±DegreeWindow of lng/lat, ordered by year closeness then mileage closeness
// (insertion order breaks remaining ties), at most Limit rows.
type ComparableFilter struct {
	Make          string
	Model         string
	Year          int
	Mileage       int
	Lng           float64
	Lat           float64
	MileageWindow int
	DegreeWindow  float64
	Limit         int
}

// ReportRepository defines the standard operations for report persistence.
type ReportRepository interface {
	// Create persists a new report entity to the storage.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a single report by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// Update modifies an existing report entity in the storage.
	Update(ctx context.Context, report *entity.Report) error

	// FindComparable retrieves the approved reports matching the filter,
	// ordered and limited as the filter specifies.
	FindComparable(ctx context.Context, filter ComparableFilter) ([]*entity.Report, error)
}
