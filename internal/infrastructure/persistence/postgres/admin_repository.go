package postgres

import (
	"context"
	"database/sql"

	"careerhub/internal/domain/admin"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AdminRepository struct {
	db *sql.DB

	stmtCreate        *sql.Stmt
	stmtGetByID       *sql.Stmt
	stmtGetByEmail    *sql.Stmt
	stmtGetPermission *sql.Stmt
}

func NewAdminRepository(db *sql.DB) (*AdminRepository, error) {
	r := &AdminRepository{db: db}

	var err error
	r.stmtCreate, err = db.PrepareContext(
		context.Background(),
		`INSERT INTO admins (id, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByID, err = db.PrepareContext(
		context.Background(),
		`SELECT id, email, password_hash, role, created_at FROM admins WHERE id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByEmail, err = db.PrepareContext(
		context.Background(),
		`SELECT id, email, password_hash, role, created_at FROM admins WHERE email = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetPermission, err = db.PrepareContext(
		context.Background(),
		`SELECT admin_id, categories FROM marking_permissions WHERE admin_id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *AdminRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtGetPermission)

	return firstErr
}

func (r *AdminRepository) Create(ctx context.Context, a admin.Admin) error {
	_, err := r.stmtCreate.ExecContext(ctx, a.ID, a.Email, a.PasswordHash, a.Role)
	return err
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (admin.Admin, error) {
	row := r.stmtGetByID.QueryRowContext(ctx, id)
	return scanAdmin(row)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	row := r.stmtGetByEmail.QueryRowContext(ctx, email)
	return scanAdmin(row)
}

// GetMarkingPermission returns an empty permission set when no row exists;
// absence means the interview admin may score nothing.
func (r *AdminRepository) GetMarkingPermission(ctx context.Context, adminID uuid.UUID) (admin.MarkingPermission, error) {
	var p admin.MarkingPermission
	row := r.stmtGetPermission.QueryRowContext(ctx, adminID)
	if err := row.Scan(&p.AdminID, pq.Array(&p.Categories)); err != nil {
		if err == sql.ErrNoRows {
			return admin.MarkingPermission{AdminID: adminID}, nil
		}
		return admin.MarkingPermission{}, err
	}
	return p, nil
}

type adminRow interface {
	Scan(dest ...any) error
}

func scanAdmin(row adminRow) (admin.Admin, error) {
	var a admin.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, err
	}
	return a, nil
}
