package handler

import (
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/application"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ExportAdminHandler serves CSV downloads from the dashboard.
type ExportAdminHandler struct {
	export usecase.ExportUsecase
}

func NewExportAdminHandler(export usecase.ExportUsecase) *ExportAdminHandler {
	return &ExportAdminHandler{export: export}
}

func (h *ExportAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/export/applications.csv", h.ApplicationsCSV)
	r.Get("/export/jobs.csv", h.JobsCSV)
}

func (h *ExportAdminHandler) ApplicationsCSV(c fiber.Ctx) error {
	filter := repository.ApplicationListFilter{}

	jobID, err := parseQueryUUID(c, "job_id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	filter.JobID = jobID

	if s := c.Query("status"); s != "" {
		st := application.Status(s)
		if !st.Valid() {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, usecase.ErrInvalidStatus)
		}
		filter.Status = &st
	}

	csv, err := h.export.ApplicationsCSV(c.Context(), filter)
	if err != nil {
		return mapUsecaseError(err)
	}
	return sendCSV(c, "applications.csv", csv)
}

func (h *ExportAdminHandler) JobsCSV(c fiber.Ctx) error {
	csv, err := h.export.JobsCSV(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return sendCSV(c, "jobs.csv", csv)
}

func sendCSV(c fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(body)
}
