package repository

import (
	"context"
	"database/sql"
	"errors"

	"careerhub/internal/database"
	"careerhub/internal/domain/settings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SettingsRepository interface {
	Get(ctx context.Context, key string) (settings.Setting, error)
	Set(ctx context.Context, key, value string) error

	GetBranding(ctx context.Context) (settings.Branding, error)
	SetBranding(ctx context.Context, b settings.Branding) error

	ListSEOPages(ctx context.Context) ([]settings.SEOPage, error)
	GetSEOPage(ctx context.Context, page string) (settings.SEOPage, error)
	SetSEOPage(ctx context.Context, p settings.SEOPage) error

	ListSliderImages(ctx context.Context) ([]settings.SliderImage, error)
	CreateSliderImage(ctx context.Context, s settings.SliderImage) error
	UpdateSliderImage(ctx context.Context, s settings.SliderImage) error
	DeleteSliderImage(ctx context.Context, id uuid.UUID) error
}

type PostgresSettingsRepository struct {
	db database.DB
}

func NewPostgresSettingsRepository(db database.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context, key string) (settings.Setting, error) {
	var s settings.Setting
	row := r.db.QueryRow(ctx, `SELECT key, value, updated_at FROM settings WHERE key = $1`, key)
	if err := row.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return settings.Setting{}, settings.ErrNotFound
		}
		return settings.Setting{}, err
	}
	return s, nil
}

func (r *PostgresSettingsRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	return err
}

func (r *PostgresSettingsRepository) GetBranding(ctx context.Context) (settings.Branding, error) {
	var b settings.Branding
	row := r.db.QueryRow(ctx, `SELECT logo_path, redirect_url, updated_at FROM branding WHERE id = 1`)
	if err := row.Scan(&b.LogoPath, &b.RedirectURL, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return settings.Branding{}, nil
		}
		return settings.Branding{}, err
	}
	return b, nil
}

func (r *PostgresSettingsRepository) SetBranding(ctx context.Context, b settings.Branding) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO branding (id, logo_path, redirect_url) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET logo_path = EXCLUDED.logo_path, redirect_url = EXCLUDED.redirect_url, updated_at = now()`,
		b.LogoPath, b.RedirectURL,
	)
	return err
}

func (r *PostgresSettingsRepository) ListSEOPages(ctx context.Context) ([]settings.SEOPage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT page, title, description, keywords, og_image, json_ld, updated_at FROM seo_pages ORDER BY page ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]settings.SEOPage, 0)
	for rows.Next() {
		var p settings.SEOPage
		if err := rows.Scan(&p.Page, &p.Title, &p.Description, &p.Keywords, &p.OGImage, &p.JSONLD, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresSettingsRepository) GetSEOPage(ctx context.Context, page string) (settings.SEOPage, error) {
	var p settings.SEOPage
	row := r.db.QueryRow(ctx,
		`SELECT page, title, description, keywords, og_image, json_ld, updated_at FROM seo_pages WHERE page = $1`, page)
	if err := row.Scan(&p.Page, &p.Title, &p.Description, &p.Keywords, &p.OGImage, &p.JSONLD, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return settings.SEOPage{}, settings.ErrNotFound
		}
		return settings.SEOPage{}, err
	}
	return p, nil
}

func (r *PostgresSettingsRepository) SetSEOPage(ctx context.Context, p settings.SEOPage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO seo_pages (page, title, description, keywords, og_image, json_ld)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (page) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			keywords = EXCLUDED.keywords,
			og_image = EXCLUDED.og_image,
			json_ld = EXCLUDED.json_ld,
			updated_at = now()`,
		p.Page, p.Title, p.Description, p.Keywords, p.OGImage, p.JSONLD,
	)
	return err
}

func (r *PostgresSettingsRepository) ListSliderImages(ctx context.Context) ([]settings.SliderImage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, image_path, caption, sort_order, created_at FROM slider_images ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]settings.SliderImage, 0)
	for rows.Next() {
		var s settings.SliderImage
		if err := rows.Scan(&s.ID, &s.ImagePath, &s.Caption, &s.SortOrder, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateSliderImage appends to the end of the slider; the order is computed
// inside the insert so concurrent appends cannot race a read-then-write.
func (r *PostgresSettingsRepository) CreateSliderImage(ctx context.Context, s settings.SliderImage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO slider_images (id, image_path, caption, sort_order)
		 VALUES ($1, $2, $3, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM slider_images))`,
		s.ID, s.ImagePath, s.Caption,
	)
	return err
}

func (r *PostgresSettingsRepository) UpdateSliderImage(ctx context.Context, s settings.SliderImage) error {
	n, err := r.db.Exec(ctx,
		`UPDATE slider_images SET image_path = $2, caption = $3, sort_order = $4 WHERE id = $1`,
		s.ID, s.ImagePath, s.Caption, s.SortOrder,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return settings.ErrNotFound
	}
	return nil
}

func (r *PostgresSettingsRepository) DeleteSliderImage(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM slider_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return settings.ErrNotFound
	}
	return nil
}
