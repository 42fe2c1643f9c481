package repository

import (
	"context"
	"database/sql"
	"errors"

	"careerhub/internal/database"
	"careerhub/internal/domain/lookup"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LookupRepository interface {
	List(ctx context.Context, kind lookup.Kind) ([]lookup.Entry, error)
	GetByID(ctx context.Context, kind lookup.Kind, id uuid.UUID) (lookup.Entry, error)
	Create(ctx context.Context, kind lookup.Kind, e lookup.Entry) error
	Rename(ctx context.Context, kind lookup.Kind, id uuid.UUID, name string) error
	Delete(ctx context.Context, kind lookup.Kind, id uuid.UUID) error
}

type PostgresLookupRepository struct {
	db database.DB
}

func NewPostgresLookupRepository(db database.DB) *PostgresLookupRepository {
	return &PostgresLookupRepository{db: db}
}

// table gates kind against the fixed allowlist before it is spliced into
// SQL; lookup kinds never come from request text unchecked.
func table(kind lookup.Kind) (string, error) {
	if !kind.Valid() {
		return "", lookup.ErrInvalidKind
	}
	return string(kind), nil
}

func (r *PostgresLookupRepository) List(ctx context.Context, kind lookup.Kind) ([]lookup.Entry, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, is_system, created_at FROM `+tbl+` ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lookup.Entry, 0)
	for rows.Next() {
		var e lookup.Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.IsSystem, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresLookupRepository) GetByID(ctx context.Context, kind lookup.Kind, id uuid.UUID) (lookup.Entry, error) {
	tbl, err := table(kind)
	if err != nil {
		return lookup.Entry{}, err
	}

	var e lookup.Entry
	row := r.db.QueryRow(ctx, `SELECT id, name, is_system, created_at FROM `+tbl+` WHERE id = $1`, id)
	if err := row.Scan(&e.ID, &e.Name, &e.IsSystem, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return lookup.Entry{}, lookup.ErrNotFound
		}
		return lookup.Entry{}, err
	}
	return e, nil
}

func (r *PostgresLookupRepository) Create(ctx context.Context, kind lookup.Kind, e lookup.Entry) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `INSERT INTO `+tbl+` (id, name, is_system) VALUES ($1, $2, $3)`, e.ID, e.Name, e.IsSystem)
	if isUniqueViolation(err) {
		return lookup.ErrNameTaken
	}
	return err
}

func (r *PostgresLookupRepository) Rename(ctx context.Context, kind lookup.Kind, id uuid.UUID, name string) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx, `UPDATE `+tbl+` SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return lookup.ErrNameTaken
		}
		return err
	}
	if n == 0 {
		return lookup.ErrNotFound
	}
	return nil
}

func (r *PostgresLookupRepository) Delete(ctx context.Context, kind lookup.Kind, id uuid.UUID) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx, `DELETE FROM `+tbl+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return lookup.ErrNotFound
	}
	return nil
}
