package usecase

import (
	"context"
	"strings"

	"careerhub/internal/domain/lookup"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

type LookupUsecase interface {
	List(ctx context.Context, kind lookup.Kind) ([]lookup.Entry, error)
	Create(ctx context.Context, kind lookup.Kind, name string) (lookup.Entry, error)
	Rename(ctx context.Context, kind lookup.Kind, id uuid.UUID, name string) (lookup.Entry, error)
	Delete(ctx context.Context, kind lookup.Kind, id uuid.UUID) error
}

type Lookups struct {
	entries repository.LookupRepository
}

func NewLookupUsecase(entries repository.LookupRepository) *Lookups {
	return &Lookups{entries: entries}
}

func (u *Lookups) List(ctx context.Context, kind lookup.Kind) ([]lookup.Entry, error) {
	return u.entries.List(ctx, kind)
}

func (u *Lookups) Create(ctx context.Context, kind lookup.Kind, name string) (lookup.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return lookup.Entry{}, ErrInvalidInput
	}

	e := lookup.Entry{ID: uuid.New(), Name: name}
	if err := u.entries.Create(ctx, kind, e); err != nil {
		return lookup.Entry{}, err
	}
	return u.entries.GetByID(ctx, kind, e.ID)
}

func (u *Lookups) Rename(ctx context.Context, kind lookup.Kind, id uuid.UUID, name string) (lookup.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return lookup.Entry{}, ErrInvalidInput
	}

	if err := u.entries.Rename(ctx, kind, id, name); err != nil {
		return lookup.Entry{}, err
	}
	return u.entries.GetByID(ctx, kind, id)
}

// Delete refuses to remove seed rows. The is_system flag is checked on the
// current row, not on request input.
func (u *Lookups) Delete(ctx context.Context, kind lookup.Kind, id uuid.UUID) error {
	e, err := u.entries.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if e.IsSystem {
		return lookup.ErrSystemEntry
	}
	return u.entries.Delete(ctx, kind, id)
}
