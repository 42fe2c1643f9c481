package handler

import (
	"encoding/xml"

	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SitemapHandler renders sitemap.xml and robots.txt from the configured base
// site URL and the currently open jobs.
type SitemapHandler struct {
	jobs     usecase.JobUsecase
	settings usecase.SettingsUsecase
}

func NewSitemapHandler(jobs usecase.JobUsecase, settings usecase.SettingsUsecase) *SitemapHandler {
	return &SitemapHandler{jobs: jobs, settings: settings}
}

func (h *SitemapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *SitemapHandler) Sitemap(c fiber.Ctx) error {
	base, err := h.settings.BaseSiteURL(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	jobs, err := h.jobs.ListPublic(c.Context(), usecase.JobListParams{Limit: -1})
	if err != nil {
		return mapUsecaseError(err)
	}

	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/"}, {Loc: base + "/jobs"}},
	}
	for _, j := range jobs {
		if j.Slug == "" {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + "/jobs/" + j.Slug,
			LastMod: j.CreatedAt.UTC().Format("2006-01-02"),
		})
	}

	body, err := xml.Marshal(set)
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Status(fiber.StatusOK).Send(append([]byte(xml.Header), body...))
}

func (h *SitemapHandler) Robots(c fiber.Ctx) error {
	base, err := h.settings.BaseSiteURL(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	body := "User-agent: *\nAllow: /\nDisallow: /admin\n"
	if base != "" {
		body += "Sitemap: " + base + "/sitemap.xml\n"
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(body)
}
