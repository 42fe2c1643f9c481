package repository

import (
	"context"
	"database/sql"
	"errors"

	"careerhub/internal/database"
	"careerhub/internal/domain/form"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FieldOrder is one (id, newOrder) pair of a reorder batch.
type FieldOrder struct {
	ID        uuid.UUID
	SortOrder int
}

type FormFieldRepository interface {
	ListActive(ctx context.Context) ([]form.Field, error)
	ListAll(ctx context.Context) ([]form.Field, error)
	GetByID(ctx context.Context, id uuid.UUID) (form.Field, error)
	Create(ctx context.Context, f form.Field) (form.Field, error)
	Update(ctx context.Context, f form.Field) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, orders []FieldOrder) error
	Count(ctx context.Context) (int64, error)
}

type PostgresFormFieldRepository struct {
	db database.DB
}

func NewPostgresFormFieldRepository(db database.DB) *PostgresFormFieldRepository {
	return &PostgresFormFieldRepository{db: db}
}

const fieldColumns = `id, label, name, type, COALESCE(placeholder, ''), required, COALESCE(options, ''), sort_order, is_system, is_active, created_at, updated_at`

func (r *PostgresFormFieldRepository) ListActive(ctx context.Context) ([]form.Field, error) {
	return r.list(ctx, `SELECT `+fieldColumns+` FROM form_fields WHERE is_active ORDER BY sort_order ASC`)
}

func (r *PostgresFormFieldRepository) ListAll(ctx context.Context) ([]form.Field, error) {
	return r.list(ctx, `SELECT `+fieldColumns+` FROM form_fields ORDER BY sort_order ASC`)
}

func (r *PostgresFormFieldRepository) list(ctx context.Context, query string) ([]form.Field, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]form.Field, 0)
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PostgresFormFieldRepository) GetByID(ctx context.Context, id uuid.UUID) (form.Field, error) {
	row := r.db.QueryRow(ctx, `SELECT `+fieldColumns+` FROM form_fields WHERE id = $1`, id)
	f, err := scanField(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return form.Field{}, form.ErrNotFound
		}
		return form.Field{}, err
	}
	return f, nil
}

// Create appends the field to the end of the sequence. The order is assigned
// in the insert itself so concurrent creates cannot observe the same maximum.
func (r *PostgresFormFieldRepository) Create(ctx context.Context, f form.Field) (form.Field, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO form_fields (id, label, name, type, placeholder, required, options, sort_order, is_system, is_active)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM form_fields), $8, $9)
		 RETURNING sort_order, created_at, updated_at`,
		f.ID, f.Label, f.Name, f.Type, f.Placeholder, f.Required, f.Options, f.IsSystem, f.IsActive,
	)
	if err := row.Scan(&f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return form.Field{}, form.ErrNameTaken
		}
		return form.Field{}, err
	}
	return f, nil
}

// Update mutates the editable surface only; name and is_system are immutable
// post-creation.
func (r *PostgresFormFieldRepository) Update(ctx context.Context, f form.Field) error {
	n, err := r.db.Exec(ctx,
		`UPDATE form_fields
		 SET label = $2, placeholder = NULLIF($3, ''), required = $4, options = NULLIF($5, ''), is_active = $6, updated_at = now()
		 WHERE id = $1`,
		f.ID, f.Label, f.Placeholder, f.Required, f.Options, f.IsActive,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return form.ErrNotFound
	}
	return nil
}

func (r *PostgresFormFieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM form_fields WHERE id = $1 AND NOT is_system`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return form.ErrNotFound
	}
	return nil
}

// Reorder applies the batch in one transaction; a failing pair rolls back
// every other pair so no mixed old/new sequence is ever observable.
func (r *PostgresFormFieldRepository) Reorder(ctx context.Context, orders []FieldOrder) error {
	return database.InTx(ctx, r.db, func(tx database.Tx) error {
		for _, o := range orders {
			n, err := tx.Exec(ctx, `UPDATE form_fields SET sort_order = $2, updated_at = now() WHERE id = $1`, o.ID, o.SortOrder)
			if err != nil {
				return err
			}
			if n == 0 {
				return form.ErrNotFound
			}
		}
		return nil
	})
}

func (r *PostgresFormFieldRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM form_fields`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type fieldRow interface {
	Scan(dest ...any) error
}

func scanField(row fieldRow) (form.Field, error) {
	var f form.Field
	err := row.Scan(
		&f.ID, &f.Label, &f.Name, &f.Type, &f.Placeholder, &f.Required,
		&f.Options, &f.SortOrder, &f.IsSystem, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return form.Field{}, err
	}
	return f, nil
}
