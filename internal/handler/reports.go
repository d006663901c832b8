package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// ReportsHandler serves generated report endpoints. Reports are produced by
// the scheduled worker; the API only reads and prunes them.
type ReportsHandler struct {
	Handler
	reports *repository.ReportsRepository
}

func NewReportsHandler(s *server.Server, reports *repository.ReportsRepository) *ReportsHandler {
	return &ReportsHandler{
		Handler: NewHandler(s),
		reports: reports,
	}
}

// Create persists a report snapshot. Exposed for the system role so
// out-of-band tooling can backfill reports; the scheduled worker writes
// through the repository directly.
func (h *ReportsHandler) Create(c echo.Context, req *model.CreateReport) (model.Report, error) {
	return h.reports.Create(c.Request().Context(), req)
}

func (h *ReportsHandler) Get(c echo.Context, _ *Empty) (model.Report, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Report{}, err
	}
	return h.reports.Get(c.Request().Context(), id)
}

func (h *ReportsHandler) List(c echo.Context, _ *Empty) ([]model.Report, error) {
	return h.reports.List(c.Request().Context())
}

// Download returns the report as a JSON file attachment.
func (h *ReportsHandler) Download(c echo.Context, _ *Empty) ([]byte, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	report, err := h.reports.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(report)
}

func (h *ReportsHandler) Delete(c echo.Context, _ *Empty) (model.Report, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Report{}, err
	}
	return h.reports.Delete(c.Request().Context(), id)
}
