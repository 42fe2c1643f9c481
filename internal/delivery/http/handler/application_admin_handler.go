package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/application"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationAdminHandler struct {
	applications usecase.ApplicationUsecase
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationAdminHandler(applications usecase.ApplicationUsecase) *ApplicationAdminHandler {
	return &ApplicationAdminHandler{applications: applications}
}

func (h *ApplicationAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications", h.List)
	r.Get("/applications/:id", h.Detail)
	r.Patch("/applications/:id/status", h.UpdateStatus)
}

func (h *ApplicationAdminHandler) List(c fiber.Ctx) error {
	filter := repository.ApplicationListFilter{}

	var err error
	filter.Limit, err = parseQueryIntStrict(c, "limit", 50)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	filter.Offset, err = parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	filter.JobID, err = parseQueryUUID(c, "job_id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if s := c.Query("status"); s != "" {
		st := application.Status(s)
		if !st.Valid() {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, usecase.ErrInvalidStatus)
		}
		filter.Status = &st
	}

	items, err := h.applications.List(c.Context(), filter)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, applicationResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Detail returns one application. Reading a New application flips it to
// Viewed as a side effect.
func (h *ApplicationAdminHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	row, err := h.applications.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, applicationResponse(row))
}

func (h *ApplicationAdminHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req applicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.applications.UpdateStatus(c.Context(), id, application.Status(req.Status)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
