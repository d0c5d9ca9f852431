package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is a single vehicle sale report submitted by a user.
// Approved is nil until an administrator rules on it; afterwards it can be
// flipped again by a further admin call, in either direction.
type Report struct {
	ID        uuid.UUID // Store-assigned identifier.
	Make      string    // Vehicle manufacturer, e.g. "toyota".
	Model     string    // Vehicle model, e.g. "corolla".
	Year      int       // Model year.
	Mileage   int       // Odometer reading at time of sale.
	Lng       float64   // Longitude of the sale location.
	Lat       float64   // Latitude of the sale location.
	Price     int       // Price reported by the submitting user.
	Approved  *bool     // nil = pending, true = approved, false = rejected.
	CreatedBy uuid.UUID // Owning user, set at creation, immutable thereafter.
	CreatedAt time.Time
	UpdatedAt time.Time
}
