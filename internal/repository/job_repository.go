package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"careerhub/internal/database"
	"careerhub/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobListFilter narrows listings. PublicOnly keeps effective-Active rows only
// (stored Active and not expired).
type JobListFilter struct {
	DepartmentID *uuid.UUID
	TypeID       *uuid.UUID
	LocationID   *uuid.UUID
	PublicOnly   bool
	Limit        int
	Offset       int
}

// JobRow is a job with its lookups denormalized for listings and exports.
type JobRow struct {
	job.Job
	Department string
	Type       string
	Location   string
}

// SlugAssignment is one (id, slug) pair of a backfill batch.
type SlugAssignment struct {
	ID   uuid.UUID
	Slug string
}

type JobRepository interface {
	List(ctx context.Context, filter JobListFilter) ([]JobRow, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobRow, error)
	GetBySlug(ctx context.Context, slug string) (JobRow, error)
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status, expiry *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	ListMissingSlugs(ctx context.Context) ([]job.Job, error)
	AssignSlugs(ctx context.Context, assignments []SlugAssignment) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.title, j.description, j.department_id, j.type_id, j.location_id,
	j.expiry_date, j.status, COALESCE(j.slug, ''), j.views, j.created_at, j.updated_at,
	COALESCE(d.name, ''), COALESCE(t.name, ''), COALESCE(l.name, '')`

const jobJoins = `FROM jobs j
	LEFT JOIN departments d ON d.id = j.department_id
	LEFT JOIN job_types t ON t.id = j.type_id
	LEFT JOIN locations l ON l.id = j.location_id`

// effectiveActive mirrors job.EffectiveStatus in SQL so listings can be
// filtered and ordered by the overlaid status without rewriting stored rows.
const effectiveActive = `(j.status = 'Active' AND (j.expiry_date IS NULL OR j.expiry_date >= now()))`

func (r *PostgresJobRepository) List(ctx context.Context, filter JobListFilter) ([]JobRow, error) {
	// A negative limit means unbounded (exports); zero takes the default page.
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + jobColumns + ` ` + jobJoins + ` WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return `$` + strconv.Itoa(n)
	}

	if filter.PublicOnly {
		query += ` AND ` + effectiveActive
	}
	if filter.DepartmentID != nil {
		query += ` AND j.department_id = ` + arg(*filter.DepartmentID)
	}
	if filter.TypeID != nil {
		query += ` AND j.type_id = ` + arg(*filter.TypeID)
	}
	if filter.LocationID != nil {
		query += ` AND j.location_id = ` + arg(*filter.LocationID)
	}

	query += ` ORDER BY (CASE WHEN ` + effectiveActive + ` THEN 0 ELSE 1 END), j.created_at DESC`
	if limit > 0 {
		query += ` LIMIT ` + arg(limit)
	}
	query += ` OFFSET ` + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRow, 0)
	for rows.Next() {
		j, err := scanJobRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (JobRow, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` `+jobJoins+` WHERE j.id = $1`, id)
	return oneJobRow(row)
}

func (r *PostgresJobRepository) GetBySlug(ctx context.Context, slug string) (JobRow, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` `+jobJoins+` WHERE j.slug = $1`, slug)
	return oneJobRow(row)
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, department_id, type_id, location_id, expiry_date, status, slug)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))`,
		j.ID, j.Title, j.Description, j.DepartmentID, j.TypeID, j.LocationID, j.ExpiryDate, j.Status, j.Slug,
	)
	if isUniqueViolation(err) {
		return job.ErrSlugTaken
	}
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, department_id = $4, type_id = $5, location_id = $6,
		     expiry_date = $7, status = $8, slug = NULLIF($9, ''), updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.DepartmentID, j.TypeID, j.LocationID, j.ExpiryDate, j.Status, j.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return job.ErrSlugTaken
		}
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status, expiry *time.Time) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2, expiry_date = $3, updated_at = now() WHERE id = $1`,
		id, status, expiry,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return err
}

// SlugTaken excludes excludeID so regenerating a job's own slug is a no-op.
func (r *PostgresJobRepository) SlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE slug = $1 AND id <> $2)`, slug, excludeID)
	if err := row.Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (r *PostgresJobRepository) ListMissingSlugs(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title FROM jobs WHERE slug IS NULL OR slug = '' ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// AssignSlugs commits a backfill batch all-or-nothing.
func (r *PostgresJobRepository) AssignSlugs(ctx context.Context, assignments []SlugAssignment) error {
	return database.InTx(ctx, r.db, func(tx database.Tx) error {
		for _, a := range assignments {
			n, err := tx.Exec(ctx, `UPDATE jobs SET slug = $2, updated_at = now() WHERE id = $1`, a.ID, a.Slug)
			if err != nil {
				if isUniqueViolation(err) {
					return job.ErrSlugTaken
				}
				return err
			}
			if n == 0 {
				return job.ErrNotFound
			}
		}
		return nil
	})
}

type jobScanner interface {
	Scan(dest ...any) error
}

func oneJobRow(row jobScanner) (JobRow, error) {
	j, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return JobRow{}, job.ErrNotFound
		}
		return JobRow{}, err
	}
	return j, nil
}

func scanJobRow(row jobScanner) (JobRow, error) {
	var j JobRow
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.DepartmentID, &j.TypeID, &j.LocationID,
		&j.ExpiryDate, &j.Status, &j.Slug, &j.Views, &j.CreatedAt, &j.UpdatedAt,
		&j.Department, &j.Type, &j.Location,
	)
	if err != nil {
		return JobRow{}, err
	}
	return j, nil
}
