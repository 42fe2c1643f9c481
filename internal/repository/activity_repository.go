package repository

import (
	"context"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

// ActivityRepository records admin login activity. Writing is best-effort at
// the caller: a failed insert never blocks the login itself.
type ActivityRepository interface {
	RecordLogin(ctx context.Context, adminID uuid.UUID, ip, userAgent string) error
}

type PostgresActivityRepository struct {
	db database.DB
}

func NewPostgresActivityRepository(db database.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) RecordLogin(ctx context.Context, adminID uuid.UUID, ip, userAgent string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admin_login_activity (admin_id, ip, user_agent) VALUES ($1, $2, $3)`,
		adminID, ip, userAgent,
	)
	return err
}
