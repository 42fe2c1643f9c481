package usecase

import (
	"context"
	"errors"
	"strings"

	"careerhub/internal/domain/form"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type FormFieldCreateInput struct {
	Label       string
	Name        string
	Type        form.FieldType
	Placeholder string
	Required    bool
	Options     string
	IsActive    bool
}

type FormFieldUpdateInput struct {
	Label       string
	Placeholder string
	Required    bool
	Options     string
	IsActive    bool
}

type FormFieldUsecase interface {
	ListActive(ctx context.Context) ([]form.Field, error)
	ListAll(ctx context.Context) ([]form.Field, error)
	Create(ctx context.Context, in FormFieldCreateInput) (form.Field, error)
	Update(ctx context.Context, id uuid.UUID, in FormFieldUpdateInput) (form.Field, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, orders []repository.FieldOrder) error
}

type FormFields struct {
	fields repository.FormFieldRepository
}

func NewFormFieldUsecase(fields repository.FormFieldRepository) *FormFields {
	return &FormFields{fields: fields}
}

func (u *FormFields) ListActive(ctx context.Context) ([]form.Field, error) {
	return u.fields.ListActive(ctx)
}

func (u *FormFields) ListAll(ctx context.Context) ([]form.Field, error) {
	return u.fields.ListAll(ctx)
}

// Create appends an admin-defined custom field to the end of the sequence.
// A colliding name surfaces as form.ErrNameTaken from the store's unique
// constraint; there is no pre-check.
func (u *FormFields) Create(ctx context.Context, in FormFieldCreateInput) (form.Field, error) {
	label := strings.TrimSpace(in.Label)
	name := normalizeFieldName(in.Name)
	if label == "" || name == "" || !in.Type.Valid() {
		return form.Field{}, ErrInvalidInput
	}
	if in.Type.HasOptions() && strings.TrimSpace(in.Options) == "" {
		return form.Field{}, ErrInvalidInput
	}

	f := form.Field{
		ID:          uuid.New(),
		Label:       label,
		Name:        name,
		Type:        in.Type,
		Placeholder: strings.TrimSpace(in.Placeholder),
		Required:    in.Required,
		Options:     strings.TrimSpace(in.Options),
		IsSystem:    false,
		IsActive:    in.IsActive,
	}
	return u.fields.Create(ctx, f)
}

// Update leaves name and is_system untouched; they are immutable
// post-creation.
func (u *FormFields) Update(ctx context.Context, id uuid.UUID, in FormFieldUpdateInput) (form.Field, error) {
	current, err := u.fields.GetByID(ctx, id)
	if err != nil {
		return form.Field{}, err
	}

	label := strings.TrimSpace(in.Label)
	if label == "" {
		return form.Field{}, ErrInvalidInput
	}
	if current.Type.HasOptions() && strings.TrimSpace(in.Options) == "" {
		return form.Field{}, ErrInvalidInput
	}

	current.Label = label
	current.Placeholder = strings.TrimSpace(in.Placeholder)
	current.Required = in.Required
	current.Options = strings.TrimSpace(in.Options)
	current.IsActive = in.IsActive

	if err := u.fields.Update(ctx, current); err != nil {
		return form.Field{}, err
	}
	return current, nil
}

// Delete rejects system fields before touching the store.
func (u *FormFields) Delete(ctx context.Context, id uuid.UUID) error {
	f, err := u.fields.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.IsSystem {
		return form.ErrSystemField
	}
	return u.fields.Delete(ctx, id)
}

// Reorder applies the batch atomically; duplicate ids in one batch are
// rejected up front.
func (u *FormFields) Reorder(ctx context.Context, orders []repository.FieldOrder) error {
	if len(orders) == 0 {
		return ErrInvalidInput
	}
	seen := make(map[uuid.UUID]struct{}, len(orders))
	for _, o := range orders {
		if o.ID == uuid.Nil {
			return ErrInvalidInput
		}
		if _, dup := seen[o.ID]; dup {
			return ErrInvalidInput
		}
		seen[o.ID] = struct{}{}
	}
	return u.fields.Reorder(ctx, orders)
}

func normalizeFieldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}
