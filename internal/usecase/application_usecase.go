package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"careerhub/internal/domain/application"
	"careerhub/internal/domain/form"
	"careerhub/internal/domain/job"
	"careerhub/internal/repository"
	"careerhub/internal/ws"

	"github.com/google/uuid"
)

// ValidationError carries the per-field violations of a rejected submission.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Violations []form.Violation
}

func (e *ValidationError) Error() string {
	return "submission validation failed"
}

var ErrInvalidStatus = errors.New("invalid application status")

type ApplicationUsecase interface {
	Submit(ctx context.Context, jobSlug string, sub form.Submission) (application.Application, error)
	List(ctx context.Context, filter repository.ApplicationListFilter) ([]repository.ApplicationRow, error)
	Get(ctx context.Context, id uuid.UUID) (repository.ApplicationRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
}

type Applications struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	fields       repository.FormFieldRepository
	logger       *log.Logger
	now          func() time.Time
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	fields repository.FormFieldRepository,
	logger *log.Logger,
) *Applications {
	return &Applications{
		applications: applications,
		jobs:         jobs,
		fields:       fields,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit validates the submission against the active schema and persists it
// as a New application. Any violation prevents persistence entirely and is
// reported per field.
func (u *Applications) Submit(ctx context.Context, jobSlug string, sub form.Submission) (application.Application, error) {
	j, err := u.jobs.GetBySlug(ctx, jobSlug)
	if err != nil {
		return application.Application{}, err
	}
	if j.Effective(u.now()) != job.StatusActive {
		return application.Application{}, ErrJobClosed
	}

	fields, err := u.fields.ListActive(ctx)
	if err != nil {
		return application.Application{}, err
	}

	if violations := form.Validate(fields, sub); len(violations) > 0 {
		return application.Application{}, &ValidationError{Violations: violations}
	}

	a := application.Application{
		ID:     uuid.New(),
		JobID:  j.ID,
		Status: application.StatusNew,
	}
	for _, f := range fields {
		value, ok := sub[f.Name]
		if !ok || value == "" {
			continue
		}
		if !a.Assign(f.Name, value) {
			if a.Custom == nil {
				a.Custom = make(map[string]string)
			}
			a.Custom[f.Name] = value
		}
	}

	if err := u.applications.Create(ctx, a); err != nil {
		return application.Application{}, err
	}

	ws.NotifyApplicationReceived(j.Slug, j.Title, a.FullName)
	return a, nil
}

func (u *Applications) List(ctx context.Context, filter repository.ApplicationListFilter) ([]repository.ApplicationRow, error) {
	return u.applications.List(ctx, filter)
}

// Get returns the application for admin review and performs the one-time
// New -> Viewed transition. The mark is best-effort; a failed transition does
// not block the read.
func (u *Applications) Get(ctx context.Context, id uuid.UUID) (repository.ApplicationRow, error) {
	row, err := u.applications.GetByID(ctx, id)
	if err != nil {
		return repository.ApplicationRow{}, err
	}

	if row.Status == application.StatusNew {
		if err := u.applications.MarkViewed(ctx, id); err != nil {
			if u.logger != nil {
				u.logger.Printf("mark viewed failed: application=%s err=%v", id, err)
			}
		} else {
			row.Status = application.StatusViewed
		}
	}

	return row, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return u.applications.UpdateStatus(ctx, id, status)
}
