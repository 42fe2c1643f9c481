package handler

import (
	"time"

	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/domain/application"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ExportAPIHandler serves the key-gated integration API. Its payloads use
// the fixed success/count/data shape, never the site envelope.
type ExportAPIHandler struct {
	export usecase.ExportUsecase
}

func NewExportAPIHandler(export usecase.ExportUsecase) *ExportAPIHandler {
	return &ExportAPIHandler{export: export}
}

func (h *ExportAPIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.Jobs)
	r.Get("/applicants", h.Applicants)
}

// Jobs lists currently open jobs only; expired or deactivated rows are
// never included regardless of their stored status.
func (h *ExportAPIHandler) Jobs(c fiber.Ctx) error {
	rows, err := h.export.ActiveJobs(c.Context())
	if err != nil {
		return response.ExportReject(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out := make([]dto.ExportJobResponse, 0, len(rows))
	for _, j := range rows {
		expiry := ""
		if j.ExpiryDate != nil {
			expiry = j.ExpiryDate.UTC().Format("2006-01-02")
		}
		out = append(out, dto.ExportJobResponse{
			ID:         j.ID.String(),
			Title:      j.Title,
			Department: j.Department,
			Type:       j.Type,
			Location:   j.Location,
			Slug:       j.Slug,
			ExpiryDate: expiry,
			CreatedAt:  j.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return response.ExportData(c, out, len(out))
}

func (h *ExportAPIHandler) Applicants(c fiber.Ctx) error {
	filter := repository.ApplicationListFilter{}

	jobID, err := parseQueryUUID(c, "job_id")
	if err != nil {
		return response.ExportReject(c, fiber.StatusBadRequest, "Invalid job_id")
	}
	filter.JobID = jobID

	if s := c.Query("status"); s != "" {
		st := application.Status(s)
		if !st.Valid() {
			return response.ExportReject(c, fiber.StatusBadRequest, "Invalid status")
		}
		filter.Status = &st
	}

	rows, err := h.export.Applicants(c.Context(), filter)
	if err != nil {
		return response.ExportReject(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out := make([]dto.ExportApplicantResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.ExportApplicantResponse{
			ID:        a.ID.String(),
			JobTitle:  a.JobTitle,
			FullName:  a.FullName,
			Mobile:    a.Mobile,
			Email:     a.Email,
			Status:    string(a.Status),
			AppliedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return response.ExportData(c, out, len(out))
}
