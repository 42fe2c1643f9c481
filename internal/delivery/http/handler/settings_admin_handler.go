package handler

import (
	"errors"

	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/settings"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SettingsAdminHandler struct {
	settings usecase.SettingsUsecase
}

type settingValueRequest struct {
	Value string `json:"value"`
}

type brandingRequest struct {
	LogoPath    string `json:"logo_path"`
	RedirectURL string `json:"redirect_url"`
}

type seoPageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OGImage     string `json:"og_image"`
	JSONLD      string `json:"json_ld"`
}

type sliderImageRequest struct {
	ImagePath string `json:"image_path"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

type sliderImageResponse struct {
	ID        string `json:"id"`
	ImagePath string `json:"image_path"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

type seoPageResponse struct {
	Page        string `json:"page"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OGImage     string `json:"og_image"`
	JSONLD      string `json:"json_ld"`
}

func NewSettingsAdminHandler(s usecase.SettingsUsecase) *SettingsAdminHandler {
	return &SettingsAdminHandler{settings: s}
}

func (h *SettingsAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/settings/export-key", h.SetExportKey)
	r.Get("/settings/base-url", h.BaseURL)
	r.Put("/settings/base-url", h.SetBaseURL)

	r.Get("/branding", h.Branding)
	r.Put("/branding", h.SetBranding)

	r.Get("/seo", h.ListSEOPages)
	r.Get("/seo/:page", h.GetSEOPage)
	r.Put("/seo/:page", h.SetSEOPage)

	r.Get("/slider", h.ListSliderImages)
	r.Post("/slider", h.AddSliderImage)
	r.Put("/slider/:id", h.UpdateSliderImage)
	r.Delete("/slider/:id", h.DeleteSliderImage)
}

// SetExportKey replaces the export API key. The key itself is never echoed
// back in any read endpoint.
func (h *SettingsAdminHandler) SetExportKey(c fiber.Ctx) error {
	var req settingValueRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.settings.SetExportKey(c.Context(), req.Value); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsAdminHandler) BaseURL(c fiber.Ctx) error {
	url, err := h.settings.BaseSiteURL(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"base_url": url})
}

func (h *SettingsAdminHandler) SetBaseURL(c fiber.Ctx) error {
	var req settingValueRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.settings.SetBaseSiteURL(c.Context(), req.Value); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsAdminHandler) Branding(c fiber.Ctx) error {
	b, err := h.settings.Branding(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	data := map[string]any{"logo_path": b.LogoPath, "redirect_url": b.RedirectURL}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *SettingsAdminHandler) SetBranding(c fiber.Ctx) error {
	var req brandingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	b := settings.Branding{LogoPath: req.LogoPath, RedirectURL: req.RedirectURL}
	if err := h.settings.SetBranding(c.Context(), b); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsAdminHandler) ListSEOPages(c fiber.Ctx) error {
	pages, err := h.settings.ListSEOPages(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]seoPageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, seoResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SettingsAdminHandler) GetSEOPage(c fiber.Ctx) error {
	p, err := h.settings.GetSEOPage(c.Context(), c.Params("page"))
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, seoResponse(p))
}

func (h *SettingsAdminHandler) SetSEOPage(c fiber.Ctx) error {
	var req seoPageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p := settings.SEOPage{
		Page:        c.Params("page"),
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		OGImage:     req.OGImage,
		JSONLD:      req.JSONLD,
	}
	if err := h.settings.SetSEOPage(c.Context(), p); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsAdminHandler) ListSliderImages(c fiber.Ctx) error {
	images, err := h.settings.ListSliderImages(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]sliderImageResponse, 0, len(images))
	for _, s := range images {
		out = append(out, sliderResponse(s))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SettingsAdminHandler) AddSliderImage(c fiber.Ctx) error {
	var req sliderImageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.settings.AddSliderImage(c.Context(), req.ImagePath, req.Caption)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, sliderResponse(s))
}

func (h *SettingsAdminHandler) UpdateSliderImage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req sliderImageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s := settings.SliderImage{ID: id, ImagePath: req.ImagePath, Caption: req.Caption, SortOrder: req.SortOrder}
	if err := h.settings.UpdateSliderImage(c.Context(), s); err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SettingsAdminHandler) DeleteSliderImage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.settings.DeleteSliderImage(c.Context(), id); err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func sliderResponse(s settings.SliderImage) sliderImageResponse {
	return sliderImageResponse{
		ID:        s.ID.String(),
		ImagePath: s.ImagePath,
		Caption:   s.Caption,
		SortOrder: s.SortOrder,
	}
}

func seoResponse(p settings.SEOPage) seoPageResponse {
	return seoPageResponse{
		Page:        p.Page,
		Title:       p.Title,
		Description: p.Description,
		Keywords:    p.Keywords,
		OGImage:     p.OGImage,
		JSONLD:      p.JSONLD,
	}
}
