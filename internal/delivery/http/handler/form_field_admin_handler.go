package handler

import (
	"strings"

	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/form"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type FormFieldAdminHandler struct {
	fields usecase.FormFieldUsecase
}

type formFieldCreateRequest struct {
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
	IsActive    *bool    `json:"is_active"`
}

type formFieldUpdateRequest struct {
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
	IsActive    *bool    `json:"is_active"`
}

type formFieldReorderRequest struct {
	Orders []struct {
		ID        string `json:"id"`
		SortOrder int    `json:"sort_order"`
	} `json:"orders"`
}

func NewFormFieldAdminHandler(fields usecase.FormFieldUsecase) *FormFieldAdminHandler {
	return &FormFieldAdminHandler{fields: fields}
}

func (h *FormFieldAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/form-fields", h.List)
	r.Post("/form-fields", h.Create)
	// Registered before :id so "reorder" is not taken as a field id.
	r.Put("/form-fields/reorder", h.Reorder)
	r.Put("/form-fields/:id", h.Update)
	r.Delete("/form-fields/:id", h.Delete)
}

// List returns all fields, active or not, in display order.
func (h *FormFieldAdminHandler) List(c fiber.Ctx) error {
	fields, err := h.fields.ListAll(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.FormFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, formFieldResponse(f))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *FormFieldAdminHandler) Create(c fiber.Ctx) error {
	var req formFieldCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	f, err := h.fields.Create(c.Context(), usecase.FormFieldCreateInput{
		Label:       req.Label,
		Name:        req.Name,
		Type:        form.FieldType(req.Type),
		Placeholder: req.Placeholder,
		Required:    req.Required,
		Options:     strings.Join(req.Options, ","),
		IsActive:    active,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "field created", formFieldResponse(f))
}

func (h *FormFieldAdminHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req formFieldUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	f, err := h.fields.Update(c.Context(), id, usecase.FormFieldUpdateInput{
		Label:       req.Label,
		Placeholder: req.Placeholder,
		Required:    req.Required,
		Options:     strings.Join(req.Options, ","),
		IsActive:    active,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, formFieldResponse(f))
}

func (h *FormFieldAdminHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.fields.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// Reorder applies a complete new ordering in one shot. The batch either
// commits for every field or not at all.
func (h *FormFieldAdminHandler) Reorder(c fiber.Ctx) error {
	var req formFieldReorderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	orders := make([]repository.FieldOrder, 0, len(req.Orders))
	for _, o := range req.Orders {
		id, err := uuid.Parse(o.ID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		orders = append(orders, repository.FieldOrder{ID: id, SortOrder: o.SortOrder})
	}

	if err := h.fields.Reorder(c.Context(), orders); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
