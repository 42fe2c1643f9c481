package routes

import (
	"careerhub/internal/delivery/http/handler"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires the three route surfaces: the public site at the root, the
// JWT-protected dashboard under /admin and the key-gated export API under
// /api.
type Registry struct {
	Health            *handler.HealthHandler
	JobPublic         *handler.JobPublicHandler
	ApplicationPublic *handler.ApplicationPublicHandler
	Sitemap           *handler.SitemapHandler

	Auth             *handler.AuthHandler
	JobAdmin         *handler.JobAdminHandler
	ApplicationAdmin *handler.ApplicationAdminHandler
	FormFieldAdmin   *handler.FormFieldAdminHandler
	LookupAdmin      *handler.LookupAdminHandler
	SettingsAdmin    *handler.SettingsAdminHandler
	ExportAdmin      *handler.ExportAdminHandler

	ExportAPI *handler.ExportAPIHandler

	WS *ws.Handler

	AuthMW   *middleware.AuthMiddleware
	APIKeyMW *middleware.APIKeyMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerPublic(app)
	r.registerAdmin(app)
	r.registerExportAPI(app)
}

func (r *Registry) registerPublic(app *fiber.App) {
	r.Health.RegisterRoutes(app)
	r.JobPublic.RegisterRoutes(app)
	r.ApplicationPublic.RegisterRoutes(app)
	r.Sitemap.RegisterRoutes(app)
}

func (r *Registry) registerAdmin(app *fiber.App) {
	admin := app.Group("/admin")

	// Login and refresh stay outside the JWT gate.
	r.Auth.RegisterRoutes(admin.Group("/auth"))

	protected := admin.Group("", r.AuthMW.Middleware())
	protected.Get("/auth/me", r.Auth.Me)
	r.JobAdmin.RegisterRoutes(protected)
	r.ApplicationAdmin.RegisterRoutes(protected)
	r.FormFieldAdmin.RegisterRoutes(protected)
	r.LookupAdmin.RegisterRoutes(protected)
	r.SettingsAdmin.RegisterRoutes(protected)
	r.ExportAdmin.RegisterRoutes(protected)
	protected.Get("/ws/applications", r.WS.HandleApplicationsWS)
}

func (r *Registry) registerExportAPI(app *fiber.App) {
	api := app.Group("/api", r.APIKeyMW.Middleware())
	r.ExportAPI.RegisterRoutes(api)
}
