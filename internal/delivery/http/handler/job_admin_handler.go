package handler

import (
	"time"

	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/job"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobAdminHandler struct {
	jobs usecase.JobUsecase
}

type jobWriteRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DepartmentID *string `json:"department_id"`
	TypeID       *string `json:"type_id"`
	LocationID   *string `json:"location_id"`
	ExpiryDate   *string `json:"expiry_date"`
	Status       string  `json:"status"`
}

type jobStatusRequest struct {
	Status      string  `json:"status"`
	ClearExpiry bool    `json:"clear_expiry"`
	ExpiryDate  *string `json:"expiry_date"`
}

func NewJobAdminHandler(jobs usecase.JobUsecase) *JobAdminHandler {
	return &JobAdminHandler{jobs: jobs}
}

func (h *JobAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Detail)
	r.Post("/jobs", h.Create)
	r.Put("/jobs/:id", h.Update)
	r.Patch("/jobs/:id/status", h.ChangeStatus)
	r.Delete("/jobs/:id", h.Delete)
	r.Post("/jobs/backfill-slugs", h.BackfillSlugs)
}

// List returns every job regardless of status. Status in each row is still
// the effective one; stored_status carries the raw value for editing.
func (h *JobAdminHandler) List(c fiber.Ctx) error {
	params, err := parseJobListParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.jobs.ListAdmin(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.AdminJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, adminJobResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobAdminHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	v, err := h.jobs.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, adminJobResponse(v))
}

func (h *JobAdminHandler) Create(c fiber.Ctx) error {
	var req jobWriteRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, err := jobInputFromRequest(req)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	v, err := h.jobs.Create(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "job created", adminJobResponse(v))
}

func (h *JobAdminHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req jobWriteRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, err := jobInputFromRequest(req)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	v, err := h.jobs.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, adminJobResponse(v))
}

func (h *JobAdminHandler) ChangeStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req jobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.StatusChangeInput{
		Status:      job.Status(req.Status),
		ClearExpiry: req.ClearExpiry,
	}
	if req.ExpiryDate != nil {
		t, err := parseDateOnly(*req.ExpiryDate)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		in.ExpiryDate = &t
	}

	v, err := h.jobs.ChangeStatus(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, adminJobResponse(v))
}

func (h *JobAdminHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.jobs.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// BackfillSlugs assigns slugs to every job that still lacks one. The batch is
// atomic; the response reports how many rows were touched.
func (h *JobAdminHandler) BackfillSlugs(c fiber.Ctx) error {
	n, err := h.jobs.BackfillSlugs(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"updated": n})
}

func jobInputFromRequest(req jobWriteRequest) (usecase.JobCreateInput, error) {
	in := usecase.JobCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      job.Status(req.Status),
	}

	var err error
	if in.DepartmentID, err = parseOptionalUUID(req.DepartmentID); err != nil {
		return in, err
	}
	if in.TypeID, err = parseOptionalUUID(req.TypeID); err != nil {
		return in, err
	}
	if in.LocationID, err = parseOptionalUUID(req.LocationID); err != nil {
		return in, err
	}

	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		t, err := parseDateOnly(*req.ExpiryDate)
		if err != nil {
			return in, err
		}
		in.ExpiryDate = &t
	}
	return in, nil
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDateOnly(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
