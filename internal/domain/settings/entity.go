// Package settings covers the single-row keyed settings table plus the
// branding and per-page SEO records.
package settings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	KeyAPIExportKey = "api_export_key"
	KeyBaseSiteURL  = "base_site_url"
)

var ErrNotFound = errors.New("setting not found")

// ErrNoExportKey means no export API key has been configured and the
// development fallback is not enabled; the export gate fails closed.
var ErrNoExportKey = errors.New("no export api key configured")

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type Branding struct {
	LogoPath    string
	RedirectURL string
	UpdatedAt   time.Time
}

// SliderImage is one row of the public home-page image slider, ordered by
// SortOrder ascending.
type SliderImage struct {
	ID        uuid.UUID
	ImagePath string
	Caption   string
	SortOrder int
	CreatedAt time.Time
}

type SEOPage struct {
	Page        string
	Title       string
	Description string
	Keywords    string
	OGImage     string
	JSONLD      string
	UpdatedAt   time.Time
}
