package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"careerhub/internal/database"
	"careerhub/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationListFilter struct {
	JobID  *uuid.UUID
	Status *application.Status
	Limit  int
	Offset int
}

// ApplicationRow is an application joined with its job's title and slug.
type ApplicationRow struct {
	application.Application
	JobTitle string
	JobSlug  string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (ApplicationRow, error)
	List(ctx context.Context, filter ApplicationListFilter) ([]ApplicationRow, error)
	ListAll(ctx context.Context) ([]ApplicationRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
	MarkViewed(ctx context.Context, id uuid.UUID) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.job_id, a.full_name, a.nid, a.dob, a.gender, a.mobile, a.email,
	a.experience, a.education, a.source, a.objective, a.current_salary, a.expected_salary,
	a.achievements, a.message, a.linkedin, a.facebook, a.portfolio, a.resume_path, a.photo_path,
	a.custom_fields, a.status, a.created_at, j.title, COALESCE(j.slug, '')`

const applicationJoins = `FROM applications a JOIN jobs j ON j.id = a.job_id`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	custom, err := json.Marshal(a.Custom)
	if err != nil {
		return err
	}
	if a.Custom == nil {
		custom = []byte(`{}`)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO applications (
			id, job_id, full_name, nid, dob, gender, mobile, email, experience, education,
			source, objective, current_salary, expected_salary, achievements, message,
			linkedin, facebook, portfolio, resume_path, photo_path, custom_fields, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23
		)`,
		a.ID, a.JobID, a.FullName, a.NID, a.DOB, a.Gender, a.Mobile, a.Email, a.Experience, a.Education,
		a.Source, a.Objective, a.CurrentSalary, a.ExpectedSalary, a.Achievements, a.Message,
		a.LinkedIn, a.Facebook, a.Portfolio, a.ResumePath, a.PhotoPath, custom, a.Status,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (ApplicationRow, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` `+applicationJoins+` WHERE a.id = $1`, id)
	a, err := scanApplicationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return ApplicationRow{}, application.ErrNotFound
		}
		return ApplicationRow{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, filter ApplicationListFilter) ([]ApplicationRow, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + applicationColumns + ` ` + applicationJoins + ` WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return `$` + strconv.Itoa(n)
	}

	if filter.JobID != nil {
		query += ` AND a.job_id = ` + arg(*filter.JobID)
	}
	if filter.Status != nil {
		query += ` AND a.status = ` + arg(*filter.Status)
	}
	query += ` ORDER BY a.created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	return r.queryRows(ctx, query, args...)
}

func (r *PostgresApplicationRepository) ListAll(ctx context.Context) ([]ApplicationRow, error) {
	return r.queryRows(ctx, `SELECT `+applicationColumns+` `+applicationJoins+` ORDER BY a.created_at DESC`)
}

func (r *PostgresApplicationRepository) queryRows(ctx context.Context, query string, args ...any) ([]ApplicationRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationRow, 0)
	for rows.Next() {
		a, err := scanApplicationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

// MarkViewed performs the one-time New -> Viewed transition; any other stored
// status is left untouched.
func (r *PostgresApplicationRepository) MarkViewed(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1 AND status = $3`,
		id, application.StatusViewed, application.StatusNew)
	return err
}

type applicationScanner interface {
	Scan(dest ...any) error
}

func scanApplicationRow(row applicationScanner) (ApplicationRow, error) {
	var a ApplicationRow
	var custom []byte
	err := row.Scan(
		&a.ID, &a.JobID, &a.FullName, &a.NID, &a.DOB, &a.Gender, &a.Mobile, &a.Email,
		&a.Experience, &a.Education, &a.Source, &a.Objective, &a.CurrentSalary, &a.ExpectedSalary,
		&a.Achievements, &a.Message, &a.LinkedIn, &a.Facebook, &a.Portfolio, &a.ResumePath, &a.PhotoPath,
		&custom, &a.Status, &a.CreatedAt, &a.JobTitle, &a.JobSlug,
	)
	if err != nil {
		return ApplicationRow{}, err
	}
	if len(custom) > 0 {
		if err := json.Unmarshal(custom, &a.Custom); err != nil {
			return ApplicationRow{}, err
		}
	}
	return a, nil
}
