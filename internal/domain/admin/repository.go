package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("admin not found")

type Repository interface {
	Create(ctx context.Context, a Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	GetMarkingPermission(ctx context.Context, adminID uuid.UUID) (MarkingPermission, error)
}
