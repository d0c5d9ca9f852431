package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel mirrors the 'reports' table. Approved is a nullable boolean so
// the pending state is representable in SQL.
type ReportModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Make      string    `gorm:"type:varchar(100);not null;index:idx_reports_make_model"`
	Model     string    `gorm:"type:varchar(100);not null;index:idx_reports_make_model"`
	Year      int       `gorm:"not null"`
	Mileage   int       `gorm:"not null"`
	Lng       float64   `gorm:"not null"`
	Lat       float64   `gorm:"not null"`
	Price     int       `gorm:"not null"`
	Approved  *bool
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"<-:create"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
