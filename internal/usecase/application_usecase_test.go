package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerhub/internal/domain/application"
	"careerhub/internal/domain/form"
	"careerhub/internal/domain/job"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

type mockApplicationRepo struct {
	rows map[uuid.UUID]repository.ApplicationRow

	created       []application.Application
	markedViewed  []uuid.UUID
	markViewedErr error
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{rows: map[uuid.UUID]repository.ApplicationRow{}}
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	m.created = append(m.created, a)
	m.rows[a.ID] = repository.ApplicationRow{Application: a}
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (repository.ApplicationRow, error) {
	r, ok := m.rows[id]
	if !ok {
		return repository.ApplicationRow{}, application.ErrNotFound
	}
	return r, nil
}

func (m *mockApplicationRepo) List(context.Context, repository.ApplicationListFilter) ([]repository.ApplicationRow, error) {
	return nil, nil
}

func (m *mockApplicationRepo) ListAll(context.Context) ([]repository.ApplicationRow, error) {
	out := make([]repository.ApplicationRow, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	r := m.rows[id]
	r.Status = status
	m.rows[id] = r
	return nil
}

func (m *mockApplicationRepo) MarkViewed(_ context.Context, id uuid.UUID) error {
	if m.markViewedErr != nil {
		return m.markViewedErr
	}
	m.markedViewed = append(m.markedViewed, id)
	r := m.rows[id]
	r.Status = application.StatusViewed
	m.rows[id] = r
	return nil
}

type staticFieldRepo struct {
	mockFieldRepo
	active []form.Field
}

func (s *staticFieldRepo) ListActive(context.Context) ([]form.Field, error) {
	return s.active, nil
}

func submitFixture(t *testing.T) (*Applications, *mockApplicationRepo, *mockJobRepo) {
	t.Helper()

	jobRepo := newMockJobRepo()
	jobRepo.add(repository.JobRow{Job: job.Job{ID: uuid.New(), Title: "Backend Engineer", Slug: "backend-engineer", Status: job.StatusActive}})

	fieldRepo := &staticFieldRepo{active: []form.Field{
		{Name: "full_name", Type: form.FieldText, Required: true, IsActive: true},
		{Name: "mobile", Type: form.FieldTel, Required: true, IsActive: true},
		{Name: "email", Type: form.FieldEmail, Required: true, IsActive: true},
		{Name: "referrer_code", Type: form.FieldText, IsActive: true},
	}}

	appRepo := newMockApplicationRepo()
	uc := NewApplicationUsecase(appRepo, jobRepo, fieldRepo, nil)
	uc.now = fixedNow
	return uc, appRepo, jobRepo
}

func TestApplications_Submit_MissingRequiredRejected(t *testing.T) {
	uc, appRepo, _ := submitFixture(t)

	_, err := uc.Submit(context.Background(), "backend-engineer", form.Submission{
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Violations) != 1 || vErr.Violations[0].Field != "mobile" {
		t.Fatalf("expected single mobile violation, got %+v", vErr.Violations)
	}
	if len(appRepo.created) != 0 {
		t.Fatalf("rejected submission must not be persisted")
	}
}

func TestApplications_Submit_RoutesSystemAndCustomValues(t *testing.T) {
	uc, appRepo, _ := submitFixture(t)

	a, err := uc.Submit(context.Background(), "backend-engineer", form.Submission{
		"full_name":     "Jane Doe",
		"mobile":        "01700000000",
		"email":         "jane@example.com",
		"referrer_code": "REF-42",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if a.FullName != "Jane Doe" || a.Mobile != "01700000000" || a.Email != "jane@example.com" {
		t.Fatalf("system values not routed to columns: %+v", a)
	}
	if a.Custom["referrer_code"] != "REF-42" {
		t.Fatalf("custom value not routed to custom_fields: %+v", a.Custom)
	}
	if a.Status != application.StatusNew {
		t.Fatalf("expected New status, got %s", a.Status)
	}
	if len(appRepo.created) != 1 {
		t.Fatalf("expected one persisted application")
	}
}

func TestApplications_Submit_ClosedJobRejected(t *testing.T) {
	uc, _, jobRepo := submitFixture(t)

	past := fixedNow().Add(-time.Hour)
	for id, r := range jobRepo.rows {
		r.ExpiryDate = &past
		jobRepo.rows[id] = r
	}

	if _, err := uc.Submit(context.Background(), "backend-engineer", form.Submission{}); !errors.Is(err, ErrJobClosed) {
		t.Fatalf("expected ErrJobClosed, got %v", err)
	}
}

func TestApplications_Get_MarksNewAsViewed(t *testing.T) {
	uc, appRepo, _ := submitFixture(t)

	id := uuid.New()
	appRepo.rows[id] = repository.ApplicationRow{Application: application.Application{ID: id, Status: application.StatusNew}}

	row, err := uc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if row.Status != application.StatusViewed {
		t.Fatalf("expected Viewed after first read, got %s", row.Status)
	}
	if len(appRepo.markedViewed) != 1 {
		t.Fatalf("expected one MarkViewed call")
	}
}

func TestApplications_Get_MarkViewedFailureDoesNotBlockRead(t *testing.T) {
	uc, appRepo, _ := submitFixture(t)

	id := uuid.New()
	appRepo.rows[id] = repository.ApplicationRow{Application: application.Application{ID: id, Status: application.StatusNew}}
	appRepo.markViewedErr = errors.New("db down")

	row, err := uc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("read must survive a failed mark, got %v", err)
	}
	if row.Status != application.StatusNew {
		t.Fatalf("status must stay New when the mark fails, got %s", row.Status)
	}
}

func TestApplications_UpdateStatus_RejectsUnknown(t *testing.T) {
	uc, _, _ := submitFixture(t)

	if err := uc.UpdateStatus(context.Background(), uuid.New(), application.Status("Archived")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
