package usecase

import (
	"context"
	"errors"
	"strings"

	"careerhub/internal/config"
	"careerhub/internal/domain/settings"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

// ErrNoExportKey aliases the domain sentinel so callers in this layer can
// keep matching against the usecase package.
var ErrNoExportKey = settings.ErrNoExportKey

// devFallbackExportKey is only honored behind the explicit
// API_EXPORT_DEV_FALLBACK flag. It exists for local development and must
// never gate a deployed instance.
const devFallbackExportKey = "media-secret-key-123"

type SettingsUsecase interface {
	ResolveExportKey(ctx context.Context) (string, error)
	SetExportKey(ctx context.Context, key string) error
	BaseSiteURL(ctx context.Context) (string, error)
	SetBaseSiteURL(ctx context.Context, url string) error

	Branding(ctx context.Context) (settings.Branding, error)
	SetBranding(ctx context.Context, b settings.Branding) error

	ListSEOPages(ctx context.Context) ([]settings.SEOPage, error)
	GetSEOPage(ctx context.Context, page string) (settings.SEOPage, error)
	SetSEOPage(ctx context.Context, p settings.SEOPage) error

	ListSliderImages(ctx context.Context) ([]settings.SliderImage, error)
	AddSliderImage(ctx context.Context, imagePath, caption string) (settings.SliderImage, error)
	UpdateSliderImage(ctx context.Context, s settings.SliderImage) error
	DeleteSliderImage(ctx context.Context, id uuid.UUID) error
}

type Settings struct {
	store repository.SettingsRepository
	cfg   config.ExportConfig
}

func NewSettingsUsecase(store repository.SettingsRepository, cfg config.ExportConfig) *Settings {
	return &Settings{store: store, cfg: cfg}
}

// ResolveExportKey returns the accepted export API key. A missing setting
// rejects every request unless the dev fallback flag is explicitly on.
func (u *Settings) ResolveExportKey(ctx context.Context) (string, error) {
	s, err := u.store.Get(ctx, settings.KeyAPIExportKey)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			if u.cfg.DevFallback {
				return devFallbackExportKey, nil
			}
			return "", ErrNoExportKey
		}
		return "", err
	}
	if strings.TrimSpace(s.Value) == "" {
		return "", ErrNoExportKey
	}
	return s.Value, nil
}

func (u *Settings) SetExportKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidInput
	}
	return u.store.Set(ctx, settings.KeyAPIExportKey, key)
}

func (u *Settings) BaseSiteURL(ctx context.Context) (string, error) {
	s, err := u.store.Get(ctx, settings.KeyBaseSiteURL)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimRight(s.Value, "/"), nil
}

func (u *Settings) SetBaseSiteURL(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" || (!strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://")) {
		return ErrInvalidInput
	}
	return u.store.Set(ctx, settings.KeyBaseSiteURL, url)
}

func (u *Settings) Branding(ctx context.Context) (settings.Branding, error) {
	return u.store.GetBranding(ctx)
}

func (u *Settings) SetBranding(ctx context.Context, b settings.Branding) error {
	return u.store.SetBranding(ctx, b)
}

func (u *Settings) ListSEOPages(ctx context.Context) ([]settings.SEOPage, error) {
	return u.store.ListSEOPages(ctx)
}

func (u *Settings) GetSEOPage(ctx context.Context, page string) (settings.SEOPage, error) {
	return u.store.GetSEOPage(ctx, page)
}

func (u *Settings) SetSEOPage(ctx context.Context, p settings.SEOPage) error {
	if strings.TrimSpace(p.Page) == "" {
		return ErrInvalidInput
	}
	return u.store.SetSEOPage(ctx, p)
}

func (u *Settings) ListSliderImages(ctx context.Context) ([]settings.SliderImage, error) {
	return u.store.ListSliderImages(ctx)
}

// AddSliderImage appends a new slide; its position is assigned by the store.
func (u *Settings) AddSliderImage(ctx context.Context, imagePath, caption string) (settings.SliderImage, error) {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		return settings.SliderImage{}, ErrInvalidInput
	}

	s := settings.SliderImage{
		ID:        uuid.New(),
		ImagePath: imagePath,
		Caption:   strings.TrimSpace(caption),
	}
	if err := u.store.CreateSliderImage(ctx, s); err != nil {
		return settings.SliderImage{}, err
	}
	return s, nil
}

func (u *Settings) UpdateSliderImage(ctx context.Context, s settings.SliderImage) error {
	s.ImagePath = strings.TrimSpace(s.ImagePath)
	s.Caption = strings.TrimSpace(s.Caption)
	if s.ImagePath == "" {
		return ErrInvalidInput
	}
	return u.store.UpdateSliderImage(ctx, s)
}

func (u *Settings) DeleteSliderImage(ctx context.Context, id uuid.UUID) error {
	return u.store.DeleteSliderImage(ctx, id)
}
