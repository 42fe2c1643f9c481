package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"careerhub/internal/repository"
)

// ExportUsecase flattens applications and jobs into CSV. Every cell is
// quoted and internal quotes doubled, matching the fixed column header list
// per export mode.
type ExportUsecase interface {
	ApplicationsCSV(ctx context.Context, filter repository.ApplicationListFilter) ([]byte, error)
	JobsCSV(ctx context.Context) ([]byte, error)

	// JSON listings for the key-gated export API.
	ActiveJobs(ctx context.Context) ([]repository.JobRow, error)
	Applicants(ctx context.Context, filter repository.ApplicationListFilter) ([]repository.ApplicationRow, error)
}

type Export struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	now          func() time.Time
}

func NewExportUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository) *Export {
	return &Export{applications: applications, jobs: jobs, now: time.Now}
}

var applicationCSVHeader = []string{
	"Job Title", "Full Name", "NID", "Date of Birth", "Gender", "Mobile", "Email",
	"Experience", "Education", "Source", "Objective", "Current Salary", "Expected Salary",
	"Achievements", "Message", "LinkedIn", "Facebook", "Portfolio", "Status", "Applied At",
}

var jobCSVHeader = []string{
	"Title", "Department", "Type", "Location", "Status", "Slug", "Views", "Expiry Date", "Created At",
}

// ActiveJobs returns every job whose effective status is Active, already
// filtered in SQL so an expired Active row never leaks out.
func (u *Export) ActiveJobs(ctx context.Context) ([]repository.JobRow, error) {
	return u.jobs.List(ctx, repository.JobListFilter{PublicOnly: true, Limit: -1})
}

// Applicants dumps every matching application; the paged List cap does not
// apply to exports.
func (u *Export) Applicants(ctx context.Context, filter repository.ApplicationListFilter) ([]repository.ApplicationRow, error) {
	all, err := u.applications.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := all[:0:0]
	for _, a := range all {
		if filter.JobID != nil && a.JobID != *filter.JobID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		rows = append(rows, a)
	}
	return rows, nil
}

func (u *Export) ApplicationsCSV(ctx context.Context, filter repository.ApplicationListFilter) ([]byte, error) {
	rows, err := u.Applicants(ctx, filter)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	writeCSVRow(&b, applicationCSVHeader)
	for _, a := range rows {
		writeCSVRow(&b, []string{
			a.JobTitle, a.FullName, a.NID, a.DOB, a.Gender, a.Mobile, a.Email,
			a.Experience, a.Education, a.Source, a.Objective, a.CurrentSalary, a.ExpectedSalary,
			a.Achievements, a.Message, a.LinkedIn, a.Facebook, a.Portfolio,
			string(a.Status), a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return []byte(b.String()), nil
}

func (u *Export) JobsCSV(ctx context.Context) ([]byte, error) {
	rows, err := u.jobs.List(ctx, repository.JobListFilter{Limit: -1})
	if err != nil {
		return nil, err
	}

	now := u.now()
	var b strings.Builder
	writeCSVRow(&b, jobCSVHeader)
	for _, j := range rows {
		expiry := ""
		if j.ExpiryDate != nil {
			expiry = j.ExpiryDate.UTC().Format("2006-01-02")
		}
		writeCSVRow(&b, []string{
			j.Title, j.Department, j.Type, j.Location,
			string(j.Effective(now)), j.Slug, strconv.FormatInt(j.Views, 10),
			expiry, j.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return []byte(b.String()), nil
}

// writeCSVRow quotes every cell unconditionally, doubling internal quotes.
func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
