package handler

import (
	"errors"
	"time"

	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/application"
	"careerhub/internal/domain/form"
	"careerhub/internal/domain/job"
	"careerhub/internal/domain/lookup"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func jobResponse(v usecase.JobView) dto.JobResponse {
	expiry := ""
	if v.ExpiryDate != nil {
		expiry = v.ExpiryDate.UTC().Format("2006-01-02")
	}
	return dto.JobResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		Department:  v.Department,
		Type:        v.Type,
		Location:    v.Location,
		ExpiryDate:  expiry,
		Status:      string(v.Status),
		Slug:        v.Slug,
		Views:       v.Views,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func adminJobResponse(v usecase.JobView) dto.AdminJobResponse {
	return dto.AdminJobResponse{
		JobResponse:  jobResponse(v),
		StoredStatus: string(v.StoredStatus),
	}
}

func formFieldResponse(f form.Field) dto.FormFieldResponse {
	return dto.FormFieldResponse{
		ID:          f.ID.String(),
		Label:       f.Label,
		Name:        f.Name,
		Type:        string(f.Type),
		Placeholder: f.Placeholder,
		Required:    f.Required,
		Options:     f.OptionList(),
		SortOrder:   f.SortOrder,
		IsSystem:    f.IsSystem,
		IsActive:    f.IsActive,
	}
}

func applicationResponse(a repository.ApplicationRow) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:             a.ID.String(),
		JobID:          a.JobID.String(),
		JobTitle:       a.JobTitle,
		JobSlug:        a.JobSlug,
		FullName:       a.FullName,
		NID:            a.NID,
		DOB:            a.DOB,
		Gender:         a.Gender,
		Mobile:         a.Mobile,
		Email:          a.Email,
		Experience:     a.Experience,
		Education:      a.Education,
		Source:         a.Source,
		Objective:      a.Objective,
		CurrentSalary:  a.CurrentSalary,
		ExpectedSalary: a.ExpectedSalary,
		Achievements:   a.Achievements,
		Message:        a.Message,
		LinkedIn:       a.LinkedIn,
		Facebook:       a.Facebook,
		Portfolio:      a.Portfolio,
		ResumePath:     a.ResumePath,
		PhotoPath:      a.PhotoPath,
		Custom:         a.Custom,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// mapUsecaseError translates sentinel errors into the HTTP envelope.
// Validation failures carry the per-field violations as data so the caller
// learns which fields failed; everything unexpected collapses to a 500.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", vErr.Violations, err)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrExpiryInPast),
		errors.Is(err, usecase.ErrExpiryDecision),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, lookup.ErrInvalidKind):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)

	case errors.Is(err, usecase.ErrJobClosed):
		return middleware.NewAppError(fiber.StatusGone, "Job is no longer accepting applications", nil, err)

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)

	case errors.Is(err, job.ErrNotFound),
		errors.Is(err, application.ErrNotFound),
		errors.Is(err, form.ErrNotFound),
		errors.Is(err, lookup.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)

	case errors.Is(err, form.ErrNameTaken),
		errors.Is(err, lookup.ErrNameTaken),
		errors.Is(err, job.ErrSlugTaken):
		// Constraint-violation kind is not leaked; creation just failed.
		return middleware.NewAppError(fiber.StatusConflict, "Failed to create", nil, err)

	case errors.Is(err, form.ErrSystemField),
		errors.Is(err, lookup.ErrSystemEntry):
		return middleware.NewAppError(fiber.StatusForbidden, err.Error(), nil, err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
