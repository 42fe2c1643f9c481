package usecase

import (
	"context"
	csvlib "encoding/csv"
	"strings"
	"testing"
	"time"

	"careerhub/internal/domain/application"
	"careerhub/internal/domain/job"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

func TestExport_ApplicationsCSV_QuotingAndFiltering(t *testing.T) {
	jobID, otherJob := uuid.New(), uuid.New()
	appRepo := newMockApplicationRepo()
	appRepo.rows[uuid.New()] = repository.ApplicationRow{
		Application: application.Application{
			ID:       uuid.New(),
			JobID:    jobID,
			FullName: `Jane "JJ" Doe`,
			Mobile:   "01700000000",
			Email:    "jane@example.com",
			Message:  "line with, comma",
			Status:   application.StatusNew,
		},
		JobTitle: "Backend Engineer",
	}
	appRepo.rows[uuid.New()] = repository.ApplicationRow{
		Application: application.Application{ID: uuid.New(), JobID: otherJob, FullName: "Someone Else", Status: application.StatusNew},
		JobTitle:    "Other Role",
	}

	uc := NewExportUsecase(appRepo, newMockJobRepo())
	out, err := uc.ApplicationsCSV(context.Background(), repository.ApplicationListFilter{JobID: &jobID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	csv := string(out)
	lines := strings.Split(strings.TrimRight(csv, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one filtered row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"Job Title","Full Name"`) {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Jane ""JJ"" Doe"`) {
		t.Fatalf("internal quotes must be doubled: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"line with, comma"`) {
		t.Fatalf("comma cell must stay one quoted cell: %s", lines[1])
	}
	if strings.Contains(csv, "Someone Else") {
		t.Fatalf("filter must drop rows for other jobs")
	}

	// Every cell quoted, including empty ones.
	r := csvlib.NewReader(strings.NewReader(lines[1]))
	fields, err := r.Read()
	if err != nil {
		t.Fatalf("parse data row: %v", err)
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if lines[1] != strings.Join(quoted, ",") {
		t.Fatalf("every cell must be quoted: %s", lines[1])
	}
}

func TestExport_JobsCSV_EffectiveStatus(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	jobRepo := newMockJobRepo()
	jobRepo.add(repository.JobRow{
		Job:        job.Job{ID: uuid.New(), Title: "Expired Role", Slug: "expired-role", Status: job.StatusActive, ExpiryDate: &past},
		Department: "Engineering",
	})

	uc := NewExportUsecase(newMockApplicationRepo(), jobRepo)
	out, err := uc.JobsCSV(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !strings.Contains(string(out), `"Inactive"`) {
		t.Fatalf("expired Active job must export as Inactive:\n%s", out)
	}
}

func TestExport_ActiveJobs_UsesPublicFilter(t *testing.T) {
	jobRepo := newMockJobRepo()
	uc := NewExportUsecase(newMockApplicationRepo(), jobRepo)

	if _, err := uc.ActiveJobs(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !jobRepo.lastFilter.PublicOnly {
		t.Fatalf("export must request effective-Active rows only")
	}
	if jobRepo.lastFilter.Limit >= 0 {
		t.Fatalf("export listing must be unbounded, got limit %d", jobRepo.lastFilter.Limit)
	}
}
