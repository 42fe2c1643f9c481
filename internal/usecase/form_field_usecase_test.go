package usecase

import (
	"context"
	"errors"
	"testing"

	"careerhub/internal/domain/form"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

type mockFieldRepo struct {
	fields map[uuid.UUID]form.Field

	created   []form.Field
	deleted   []uuid.UUID
	reordered [][]repository.FieldOrder
	err       error
}

func newMockFieldRepo(fields ...form.Field) *mockFieldRepo {
	m := &mockFieldRepo{fields: map[uuid.UUID]form.Field{}}
	for _, f := range fields {
		m.fields[f.ID] = f
	}
	return m
}

func (m *mockFieldRepo) ListActive(context.Context) ([]form.Field, error) { return nil, m.err }
func (m *mockFieldRepo) ListAll(context.Context) ([]form.Field, error)    { return nil, m.err }
func (m *mockFieldRepo) Count(context.Context) (int64, error)             { return int64(len(m.fields)), nil }

func (m *mockFieldRepo) GetByID(_ context.Context, id uuid.UUID) (form.Field, error) {
	f, ok := m.fields[id]
	if !ok {
		return form.Field{}, form.ErrNotFound
	}
	return f, nil
}

func (m *mockFieldRepo) Create(_ context.Context, f form.Field) (form.Field, error) {
	if m.err != nil {
		return form.Field{}, m.err
	}
	f.SortOrder = len(m.created) + len(m.fields) + 1
	m.created = append(m.created, f)
	return f, nil
}

func (m *mockFieldRepo) Update(_ context.Context, f form.Field) error {
	m.fields[f.ID] = f
	return m.err
}

func (m *mockFieldRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func (m *mockFieldRepo) Reorder(_ context.Context, orders []repository.FieldOrder) error {
	m.reordered = append(m.reordered, orders)
	return m.err
}

func TestFormFields_Create_NormalizesNameAndAppends(t *testing.T) {
	repo := newMockFieldRepo()
	uc := NewFormFieldUsecase(repo)

	f, err := uc.Create(context.Background(), FormFieldCreateInput{
		Label:    "Notice Period",
		Name:     "  Notice Period ",
		Type:     form.FieldText,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.Name != "notice_period" {
		t.Fatalf("expected normalized name notice_period, got %q", f.Name)
	}
	if f.IsSystem {
		t.Fatalf("admin-created field must not be a system field")
	}
	if f.SortOrder != 1 {
		t.Fatalf("expected append to end, got sort_order %d", f.SortOrder)
	}
}

func TestFormFields_Create_OptionsRequiredForChoiceTypes(t *testing.T) {
	uc := NewFormFieldUsecase(newMockFieldRepo())

	_, err := uc.Create(context.Background(), FormFieldCreateInput{
		Label: "Shift", Name: "shift", Type: form.FieldSelect,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for optionless select, got %v", err)
	}
}

func TestFormFields_Update_KeepsNameAndSystemFlag(t *testing.T) {
	id := uuid.New()
	repo := newMockFieldRepo(form.Field{
		ID: id, Label: "Email", Name: "email", Type: form.FieldEmail,
		Required: true, IsSystem: true, IsActive: true,
	})
	uc := NewFormFieldUsecase(repo)

	f, err := uc.Update(context.Background(), id, FormFieldUpdateInput{
		Label: "Work Email", Required: true, IsActive: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.Name != "email" || !f.IsSystem {
		t.Fatalf("name/is_system must be immutable, got name=%q system=%v", f.Name, f.IsSystem)
	}
	if f.Label != "Work Email" {
		t.Fatalf("label not updated: %q", f.Label)
	}
}

func TestFormFields_Delete_SystemFieldRefused(t *testing.T) {
	id := uuid.New()
	repo := newMockFieldRepo(form.Field{ID: id, Label: "Email", Name: "email", Type: form.FieldEmail, IsSystem: true})
	uc := NewFormFieldUsecase(repo)

	if err := uc.Delete(context.Background(), id); !errors.Is(err, form.ErrSystemField) {
		t.Fatalf("expected ErrSystemField, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("store delete must not be reached for system fields")
	}
}

func TestFormFields_Delete_CustomField(t *testing.T) {
	id := uuid.New()
	repo := newMockFieldRepo(form.Field{ID: id, Label: "Shift", Name: "shift", Type: form.FieldText})
	uc := NewFormFieldUsecase(repo)

	if err := uc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Fatalf("expected delete of %s, got %v", id, repo.deleted)
	}
}

func TestFormFields_Reorder_RejectsEmptyAndDuplicates(t *testing.T) {
	repo := newMockFieldRepo()
	uc := NewFormFieldUsecase(repo)

	if err := uc.Reorder(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty batch, got %v", err)
	}

	id := uuid.New()
	dup := []repository.FieldOrder{{ID: id, SortOrder: 1}, {ID: id, SortOrder: 2}}
	if err := uc.Reorder(context.Background(), dup); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate ids, got %v", err)
	}
	if len(repo.reordered) != 0 {
		t.Fatalf("invalid batches must not reach the store")
	}
}
