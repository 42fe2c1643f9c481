package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"

	"careerhub/internal/domain/settings"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// ExportKeyResolver yields the currently accepted export API key. It may
// fail when no key is configured, in which case the gate rejects everything.
type ExportKeyResolver interface {
	ResolveExportKey(ctx context.Context) (string, error)
}

// APIKeyMiddleware gates the external export endpoints. The key may arrive
// as the api_key query parameter or the x-api-key header; either satisfies
// the check. Responses keep the export API's fixed payload shape rather than
// the internal envelope.
type APIKeyMiddleware struct {
	resolver ExportKeyResolver
	logger   *log.Logger
}

func NewAPIKeyMiddleware(resolver ExportKeyResolver, logger *log.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{resolver: resolver, logger: logger}
}

func (m *APIKeyMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		accepted, err := m.resolver.ResolveExportKey(c.Context())
		if err != nil {
			// No configured key fails closed; anything else is a store
			// outage and must not masquerade as a bad credential.
			if errors.Is(err, settings.ErrNoExportKey) {
				return response.ExportReject(c, fiber.StatusUnauthorized, "Unauthorized")
			}
			if m.logger != nil {
				m.logger.Printf("export key resolution failed: %v", err)
			}
			return response.ExportReject(c, fiber.StatusInternalServerError, "Internal server error")
		}

		// Either carrier matching is sufficient; there is no precedence rule.
		if !keyMatches(c.Query("api_key"), accepted) && !keyMatches(c.Get("x-api-key"), accepted) {
			return response.ExportReject(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		return c.Next()
	}
}

func keyMatches(supplied, accepted string) bool {
	if supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(accepted)) == 1
}
