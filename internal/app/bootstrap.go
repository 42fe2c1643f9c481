package app

import (
	"context"
	"fmt"
	"strings"

	"careerhub/internal/config"
	"careerhub/internal/delivery/http/handler"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/delivery/http/routes"
	"careerhub/internal/infrastructure/persistence/postgres"
	"careerhub/internal/pkg/jwt"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"
	"careerhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the whole dependency graph and returns the app together
// with its cleanup function.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: 20 * 1024 * 1024,
	})

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware()
	f.Use(accessMw.Middleware())
	f.Use(errMw.Middleware())

	registry, err := buildRegistry(c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func buildRegistry(c *Container) (*routes.Registry, error) {
	cfg := c.Config

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	adminRepo, err := postgres.NewAdminRepository(c.DB.SQLDB())
	if err != nil {
		return nil, err
	}

	jobRepo := repository.NewPostgresJobRepository(c.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(c.DB)
	fieldRepo := repository.NewPostgresFormFieldRepository(c.DB)
	lookupRepo := repository.NewPostgresLookupRepository(c.DB)
	settingsRepo := repository.NewPostgresSettingsRepository(c.DB)
	activityRepo := repository.NewPostgresActivityRepository(c.DB)

	jobUC := usecase.NewJobUsecase(jobRepo, c.Cache, c.Logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, fieldRepo, c.Logger)
	fieldUC := usecase.NewFormFieldUsecase(fieldRepo)
	lookupUC := usecase.NewLookupUsecase(lookupRepo)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo, cfg.Export)
	exportUC := usecase.NewExportUsecase(applicationRepo, jobRepo)
	authUC := usecase.NewAuthUsecase(adminRepo, activityRepo, jwtSvc, c.Logger)
	if err := authUC.EnsureInitialAdmin(context.Background(), cfg.Admin.InitialEmail, cfg.Admin.InitialPassword); err != nil {
		return nil, err
	}

	return &routes.Registry{
		Health:            handler.NewHealthHandler(c.DB),
		JobPublic:         handler.NewJobPublicHandler(jobUC),
		ApplicationPublic: handler.NewApplicationPublicHandler(applicationUC, fieldUC, cfg.Uploads),
		Sitemap:           handler.NewSitemapHandler(jobUC, settingsUC),

		Auth:             handler.NewAuthHandler(authUC),
		JobAdmin:         handler.NewJobAdminHandler(jobUC),
		ApplicationAdmin: handler.NewApplicationAdminHandler(applicationUC),
		FormFieldAdmin:   handler.NewFormFieldAdminHandler(fieldUC),
		LookupAdmin:      handler.NewLookupAdminHandler(lookupUC),
		SettingsAdmin:    handler.NewSettingsAdminHandler(settingsUC),
		ExportAdmin:      handler.NewExportAdminHandler(exportUC),

		ExportAPI: handler.NewExportAPIHandler(exportUC),

		WS: ws.NewHandler(c.Hub, c.Logger),

		AuthMW:   middleware.NewAuthMiddleware(jwtSvc),
		APIKeyMW: middleware.NewAPIKeyMiddleware(settingsUC, c.Logger),
	}, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
