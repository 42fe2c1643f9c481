package handler

import (
	"strconv"

	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobPublicHandler struct {
	jobs usecase.JobUsecase
}

func NewJobPublicHandler(jobs usecase.JobUsecase) *JobPublicHandler {
	return &JobPublicHandler{jobs: jobs}
}

func (h *JobPublicHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
	r.Get("/jobs/:slug", h.Detail)
}

func (h *JobPublicHandler) List(c fiber.Ctx) error {
	params, err := parseJobListParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.jobs.ListPublic(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		r := jobResponse(it)
		r.Description = ""
		out = append(out, r)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobPublicHandler) Detail(c fiber.Ctx) error {
	v, err := h.jobs.GetPublicBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponse(v))
}

func parseJobListParams(c fiber.Ctx) (usecase.JobListParams, error) {
	params := usecase.JobListParams{}

	var err error
	params.Limit, err = parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return params, err
	}
	params.Offset, err = parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return params, err
	}

	params.DepartmentID, err = parseQueryUUID(c, "department_id")
	if err != nil {
		return params, err
	}
	params.TypeID, err = parseQueryUUID(c, "type_id")
	if err != nil {
		return params, err
	}
	params.LocationID, err = parseQueryUUID(c, "location_id")
	if err != nil {
		return params, err
	}

	return params, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseQueryUUID(c fiber.Ctx, key string) (*uuid.UUID, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
