package usecase

import (
	"context"
	"errors"
	"testing"

	"careerhub/internal/config"
	"careerhub/internal/domain/settings"

	"github.com/google/uuid"
)

type mockSettingsRepo struct {
	values map[string]string
	slides []settings.SliderImage
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{values: map[string]string{}}
}

func (m *mockSettingsRepo) Get(_ context.Context, key string) (settings.Setting, error) {
	v, ok := m.values[key]
	if !ok {
		return settings.Setting{}, settings.ErrNotFound
	}
	return settings.Setting{Key: key, Value: v}, nil
}

func (m *mockSettingsRepo) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *mockSettingsRepo) GetBranding(context.Context) (settings.Branding, error) {
	return settings.Branding{}, nil
}
func (m *mockSettingsRepo) SetBranding(context.Context, settings.Branding) error { return nil }
func (m *mockSettingsRepo) ListSEOPages(context.Context) ([]settings.SEOPage, error) {
	return nil, nil
}
func (m *mockSettingsRepo) GetSEOPage(_ context.Context, page string) (settings.SEOPage, error) {
	return settings.SEOPage{Page: page}, nil
}
func (m *mockSettingsRepo) SetSEOPage(context.Context, settings.SEOPage) error { return nil }

func (m *mockSettingsRepo) ListSliderImages(context.Context) ([]settings.SliderImage, error) {
	return m.slides, nil
}

func (m *mockSettingsRepo) CreateSliderImage(_ context.Context, s settings.SliderImage) error {
	s.SortOrder = len(m.slides) + 1
	m.slides = append(m.slides, s)
	return nil
}

func (m *mockSettingsRepo) UpdateSliderImage(_ context.Context, s settings.SliderImage) error {
	for i := range m.slides {
		if m.slides[i].ID == s.ID {
			m.slides[i] = s
			return nil
		}
	}
	return settings.ErrNotFound
}

func (m *mockSettingsRepo) DeleteSliderImage(_ context.Context, id uuid.UUID) error {
	for i := range m.slides {
		if m.slides[i].ID == id {
			m.slides = append(m.slides[:i], m.slides[i+1:]...)
			return nil
		}
	}
	return settings.ErrNotFound
}

func TestSettings_ResolveExportKey_FailsClosedWithoutKey(t *testing.T) {
	uc := NewSettingsUsecase(newMockSettingsRepo(), config.ExportConfig{})

	if _, err := uc.ResolveExportKey(context.Background()); !errors.Is(err, ErrNoExportKey) {
		t.Fatalf("expected ErrNoExportKey, got %v", err)
	}
}

func TestSettings_ResolveExportKey_DevFallbackOnlyWhenFlagged(t *testing.T) {
	uc := NewSettingsUsecase(newMockSettingsRepo(), config.ExportConfig{DevFallback: true})

	key, err := uc.ResolveExportKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if key == "" {
		t.Fatalf("expected the fallback key with the flag enabled")
	}
}

func TestSettings_ResolveExportKey_ConfiguredKeyWins(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.values[settings.KeyAPIExportKey] = "prod-key"
	uc := NewSettingsUsecase(repo, config.ExportConfig{DevFallback: true})

	key, err := uc.ResolveExportKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if key != "prod-key" {
		t.Fatalf("configured key must take precedence, got %q", key)
	}
}

func TestSettings_ResolveExportKey_BlankStoredKeyRejects(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.values[settings.KeyAPIExportKey] = "   "
	uc := NewSettingsUsecase(repo, config.ExportConfig{DevFallback: true})

	if _, err := uc.ResolveExportKey(context.Background()); !errors.Is(err, ErrNoExportKey) {
		t.Fatalf("blank stored key must fail closed, got %v", err)
	}
}

func TestSettings_SetBaseSiteURL_RequiresHTTPScheme(t *testing.T) {
	uc := NewSettingsUsecase(newMockSettingsRepo(), config.ExportConfig{})

	if err := uc.SetBaseSiteURL(context.Background(), "example.com"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for schemeless URL, got %v", err)
	}
	if err := uc.SetBaseSiteURL(context.Background(), "https://careers.example.com/"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSettings_BaseSiteURL_TrimsTrailingSlash(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.values[settings.KeyBaseSiteURL] = "https://careers.example.com/"
	uc := NewSettingsUsecase(repo, config.ExportConfig{})

	url, err := uc.BaseSiteURL(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if url != "https://careers.example.com" {
		t.Fatalf("expected trimmed URL, got %q", url)
	}
}

func TestSettings_AddSliderImage_RequiresPath(t *testing.T) {
	uc := NewSettingsUsecase(newMockSettingsRepo(), config.ExportConfig{})

	if _, err := uc.AddSliderImage(context.Background(), "   ", "caption"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank path, got %v", err)
	}
}

func TestSettings_AddSliderImage_TrimsAndStores(t *testing.T) {
	repo := newMockSettingsRepo()
	uc := NewSettingsUsecase(repo, config.ExportConfig{})

	s, err := uc.AddSliderImage(context.Background(), " uploads/hero.jpg ", " Join us ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.ImagePath != "uploads/hero.jpg" || s.Caption != "Join us" {
		t.Fatalf("expected trimmed fields, got %+v", s)
	}
	if len(repo.slides) != 1 {
		t.Fatalf("expected one stored slide, got %d", len(repo.slides))
	}
}

func TestSettings_UpdateSliderImage_UnknownID(t *testing.T) {
	uc := NewSettingsUsecase(newMockSettingsRepo(), config.ExportConfig{})

	err := uc.UpdateSliderImage(context.Background(), settings.SliderImage{ID: uuid.New(), ImagePath: "uploads/hero.jpg"})
	if !errors.Is(err, settings.ErrNotFound) {
		t.Fatalf("expected settings.ErrNotFound, got %v", err)
	}
}

func TestSettings_DeleteSliderImage(t *testing.T) {
	repo := newMockSettingsRepo()
	uc := NewSettingsUsecase(repo, config.ExportConfig{})

	s, err := uc.AddSliderImage(context.Background(), "uploads/hero.jpg", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.DeleteSliderImage(context.Background(), s.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.DeleteSliderImage(context.Background(), s.ID); !errors.Is(err, settings.ErrNotFound) {
		t.Fatalf("expected settings.ErrNotFound on second delete, got %v", err)
	}
}
