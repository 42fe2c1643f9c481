package usecase

import (
	"context"
	"errors"
	"testing"

	"careerhub/internal/domain/lookup"

	"github.com/google/uuid"
)

type mockLookupRepo struct {
	entries map[uuid.UUID]lookup.Entry
	deleted []uuid.UUID
}

func newMockLookupRepo(entries ...lookup.Entry) *mockLookupRepo {
	m := &mockLookupRepo{entries: map[uuid.UUID]lookup.Entry{}}
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return m
}

func (m *mockLookupRepo) List(context.Context, lookup.Kind) ([]lookup.Entry, error) {
	return nil, nil
}

func (m *mockLookupRepo) GetByID(_ context.Context, _ lookup.Kind, id uuid.UUID) (lookup.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return lookup.Entry{}, lookup.ErrNotFound
	}
	return e, nil
}

func (m *mockLookupRepo) Create(_ context.Context, _ lookup.Kind, e lookup.Entry) error {
	m.entries[e.ID] = e
	return nil
}

func (m *mockLookupRepo) Rename(_ context.Context, _ lookup.Kind, id uuid.UUID, name string) error {
	e := m.entries[id]
	e.Name = name
	m.entries[id] = e
	return nil
}

func (m *mockLookupRepo) Delete(_ context.Context, _ lookup.Kind, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.entries, id)
	return nil
}

func TestLookups_Delete_SystemEntryRefused(t *testing.T) {
	id := uuid.New()
	repo := newMockLookupRepo(lookup.Entry{ID: id, Name: "Engineering", IsSystem: true})
	uc := NewLookupUsecase(repo)

	err := uc.Delete(context.Background(), lookup.KindDepartment, id)
	if !errors.Is(err, lookup.ErrSystemEntry) {
		t.Fatalf("expected ErrSystemEntry, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("system entries must never reach the store delete")
	}
}

func TestLookups_Delete_CustomEntry(t *testing.T) {
	id := uuid.New()
	repo := newMockLookupRepo(lookup.Entry{ID: id, Name: "Legal"})
	uc := NewLookupUsecase(repo)

	if err := uc.Delete(context.Background(), lookup.KindDepartment, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one delete")
	}
}

func TestLookups_Create_RejectsBlankName(t *testing.T) {
	uc := NewLookupUsecase(newMockLookupRepo())

	if _, err := uc.Create(context.Background(), lookup.KindLocation, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
