package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerhub/internal/domain/settings"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type staticKeyResolver struct {
	key string
	err error
}

func (r staticKeyResolver) ResolveExportKey(context.Context) (string, error) {
	return r.key, r.err
}

func newGatedApp(resolver ExportKeyResolver) *fiber.App {
	app := fiber.New()
	mw := NewAPIKeyMiddleware(resolver, nil)
	app.Get("/api/jobs", mw.Middleware(), func(c fiber.Ctx) error {
		return response.ExportData(c, []string{}, 0)
	})
	return app
}

func TestAPIKeyMiddleware_QueryParamAccepted(t *testing.T) {
	app := newGatedApp(staticKeyResolver{key: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?api_key=secret", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAPIKeyMiddleware_HeaderAccepted(t *testing.T) {
	app := newGatedApp(staticKeyResolver{key: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("x-api-key", "secret")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAPIKeyMiddleware_EitherCarrierSuffices(t *testing.T) {
	app := newGatedApp(staticKeyResolver{key: "secret"})

	// Wrong query value plus a correct header still passes.
	req := httptest.NewRequest(http.MethodGet, "/api/jobs?api_key=wrong", nil)
	req.Header.Set("x-api-key", "secret")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 when one carrier matches, got %d", resp.StatusCode)
	}
}

func TestAPIKeyMiddleware_WrongKeyRejectedWithExportShape(t *testing.T) {
	app := newGatedApp(staticKeyResolver{key: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?api_key=wrong", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var body response.ExportError
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error == "" {
		t.Fatalf("expected {success:false, error:...}, got %+v", body)
	}
}

func TestAPIKeyMiddleware_MissingKeyRejected(t *testing.T) {
	app := newGatedApp(staticKeyResolver{key: "secret"})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAPIKeyMiddleware_NoConfiguredKeyFailsClosed(t *testing.T) {
	app := newGatedApp(staticKeyResolver{err: settings.ErrNoExportKey})

	// Even a non-empty supplied key cannot pass when no key is configured.
	req := httptest.NewRequest(http.MethodGet, "/api/jobs?api_key=anything", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected fail-closed 401, got %d", resp.StatusCode)
	}
}

func TestAPIKeyMiddleware_StoreOutageIsNotUnauthorized(t *testing.T) {
	app := newGatedApp(staticKeyResolver{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?api_key=anything", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 on resolver outage, got %d", resp.StatusCode)
	}

	var body response.ExportError
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error == "" {
		t.Fatalf("expected {success:false, error:...}, got %+v", body)
	}
}
