package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	// CtxRequestIDKey exposes the request id to handlers via c.Locals.
	CtxRequestIDKey = "request_id"
)

// AccessLogMiddleware tags every request with an id and logs one line per
// completed request. Health probes are logged only when they fail, so load
// balancer polling does not drown the log.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(RequestIDHeader, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if c.Path() == "/health" && status < 400 {
			return err
		}

		m.logger.Printf(
			"request completed: id=%s method=%s path=%s status=%d dur=%s ip=%s bytes=%d ua=%q",
			rid, c.Method(), c.OriginalURL(), status, time.Since(start),
			c.IP(), c.Response().Header.ContentLength(), c.Get("User-Agent"),
		)

		return err
	}
}
