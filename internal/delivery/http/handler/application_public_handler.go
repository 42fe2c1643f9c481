package handler

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"careerhub/internal/config"
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/form"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationPublicHandler struct {
	applications usecase.ApplicationUsecase
	fields       usecase.FormFieldUsecase
	uploads      config.UploadConfig
}

func NewApplicationPublicHandler(
	applications usecase.ApplicationUsecase,
	fields usecase.FormFieldUsecase,
	uploads config.UploadConfig,
) *ApplicationPublicHandler {
	return &ApplicationPublicHandler{applications: applications, fields: fields, uploads: uploads}
}

func (h *ApplicationPublicHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/form-fields", h.FormSchema)
	r.Post("/jobs/:slug/apply", h.Submit)
}

// FormSchema returns the active fields, in order, for rendering the public
// application form.
func (h *ApplicationPublicHandler) FormSchema(c fiber.Ctx) error {
	fields, err := h.fields.ListActive(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.FormFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, formFieldResponse(f))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Submit accepts a multipart submission. File parts are stored before
// validation so the validator sees their stored paths; a rejected
// submission therefore never creates an application row, though its uploads
// may remain on disk as orphans.
func (h *ApplicationPublicHandler) Submit(c fiber.Ctx) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sub := form.Submission{}
	for name, values := range mf.Value {
		if len(values) > 0 {
			sub[name] = strings.TrimSpace(values[0])
		}
	}

	for name, files := range mf.File {
		if len(files) == 0 {
			continue
		}
		path, err := h.storeUpload(c, files[0])
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, fmt.Sprintf("could not store %s upload", name), nil, err)
		}
		sub[name] = path
	}

	a, err := h.applications.Submit(c.Context(), c.Params("slug"), sub)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{"application_id": a.ID.String()}
	return response.Success(c, fiber.StatusCreated, "application received", data)
}

func (h *ApplicationPublicHandler) storeUpload(c fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fh.Filename)
	name := uuid.NewString() + ext
	dst := filepath.Join(h.uploads.Dir, name)
	if err := c.SaveFile(fh, dst); err != nil {
		return "", err
	}
	return dst, nil
}
