package handler

import (
	"log/slog"
	"net/http"

	"carvalue/internal/delivery/http/middleware"
	"carvalue/internal/delivery/http/response"
	"carvalue/internal/domain/entity"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for report-related handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// createReportRequest is the payload for submitting a report. The bounds
// mirror what the estimate queries accept.
type createReportRequest struct {
	Make    string  `json:"make" validate:"required"`
	Model   string  `json:"model" validate:"required"`
	Year    int     `json:"year" validate:"required,min=1930,max=2050"`
	Mileage int     `json:"mileage" validate:"min=0,max=1000000"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Price   int     `json:"price" validate:"min=0,max=1000000"`
}

// estimateRequest is the query-string form of an estimate lookup.
type estimateRequest struct {
	Make    string  `query:"make" validate:"required"`
	Model   string  `query:"model" validate:"required"`
	Year    int     `query:"year" validate:"required,min=1930,max=2050"`
	Mileage int     `query:"mileage" validate:"min=0,max=1000000"`
	Lng     float64 `query:"lng" validate:"min=-180,max=180"`
	Lat     float64 `query:"lat" validate:"min=-90,max=90"`
}

// changeApprovalRequest carries an admin's ruling. A pointer keeps a missing
// field distinguishable from an explicit false.
type changeApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// reportResponse is the public view of a report.
type reportResponse struct {
	ID        uuid.UUID `json:"id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Mileage   int       `json:"mileage"`
	Lng       float64   `json:"lng"`
	Lat       float64   `json:"lat"`
	Price     int       `json:"price"`
	Approved  *bool     `json:"approved"`
	CreatedBy uuid.UUID `json:"createdBy"`
}

func toReportResponse(report *entity.Report) reportResponse {
	return reportResponse{
		ID:        report.ID,
		Make:      report.Make,
		Model:     report.Model,
		Year:      report.Year,
		Mileage:   report.Mileage,
		Lng:       report.Lng,
		Lat:       report.Lat,
		Price:     report.Price,
		Approved:  report.Approved,
		CreatedBy: report.CreatedBy,
	}
}

// CreateReport handles report submission by a signed-in user.
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var input createReportRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user := middleware.UserFromContext(c)
	report, err := h.uc.CreateReport(c.Request().Context(), &usecase.CreateReportInput{
		Make:    input.Make,
		Model:   input.Model,
		Year:    input.Year,
		Mileage: input.Mileage,
		Lng:     input.Lng,
		Lat:     input.Lat,
		Price:   input.Price,
	}, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReportResponse(report), "Report created successfully")
}

// ChangeApproval handles an admin ruling on a report.
func (h *ReportHandler) ChangeApproval(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid report id")
	}

	var input changeApprovalRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	report, err := h.uc.ChangeApproval(c.Request().Context(), id, *input.Approved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReportResponse(report), "Report approval updated")
}

// GetEstimate handles the price estimate lookup.
func (h *ReportHandler) GetEstimate(c echo.Context) error {
	var input estimateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estimate query")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	price, err := h.uc.CreateEstimate(c.Request().Context(), &usecase.EstimateQuery{
		Make:    input.Make,
		Model:   input.Model,
		Year:    input.Year,
		Mileage: input.Mileage,
		Lng:     input.Lng,
		Lat:     input.Lat,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"price": price}, "")
}
