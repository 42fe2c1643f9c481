package handler

import (
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/lookup"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type LookupAdminHandler struct {
	lookups usecase.LookupUsecase
}

type lookupNameRequest struct {
	Name string `json:"name"`
}

type lookupEntryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsSystem bool   `json:"is_system"`
}

func NewLookupAdminHandler(lookups usecase.LookupUsecase) *LookupAdminHandler {
	return &LookupAdminHandler{lookups: lookups}
}

// RegisterRoutes mounts one CRUD surface per lookup table. The kind segment
// doubles as the table name and is validated before any query runs.
func (h *LookupAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/lookups/:kind", h.List)
	r.Post("/lookups/:kind", h.Create)
	r.Put("/lookups/:kind/:id", h.Rename)
	r.Delete("/lookups/:kind/:id", h.Delete)
}

func (h *LookupAdminHandler) List(c fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}

	entries, err := h.lookups.List(c.Context(), kind)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]lookupEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, lookupEntryResponse{ID: e.ID.String(), Name: e.Name, IsSystem: e.IsSystem})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *LookupAdminHandler) Create(c fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}

	var req lookupNameRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	e, err := h.lookups.Create(c.Context(), kind, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "entry created",
		lookupEntryResponse{ID: e.ID.String(), Name: e.Name, IsSystem: e.IsSystem})
}

func (h *LookupAdminHandler) Rename(c fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req lookupNameRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	e, err := h.lookups.Rename(c.Context(), kind, id, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		lookupEntryResponse{ID: e.ID.String(), Name: e.Name, IsSystem: e.IsSystem})
}

func (h *LookupAdminHandler) Delete(c fiber.Ctx) error {
	kind, err := parseKind(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.lookups.Delete(c.Context(), kind, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func parseKind(c fiber.Ctx) (lookup.Kind, error) {
	kind := lookup.Kind(c.Params("kind"))
	if !kind.Valid() {
		return "", middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, lookup.ErrInvalidKind)
	}
	return kind, nil
}
