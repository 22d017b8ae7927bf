package httpx

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"device-status-service/internal/platform/logging"
	"device-status-service/internal/platform/metrics"
)

// RequestContext copies the request id set by the requestid middleware into
// the user context, so use cases and the upstream client can log and
// forward it.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.GetRespHeader(fiber.HeaderXRequestID)
		if id == "" {
			id = c.Get(fiber.HeaderXRequestID)
		}
		if id != "" {
			c.SetUserContext(logging.ContextWithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

// AccessLog logs every request and records it in the HTTP metrics.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := c.Route().Path
		elapsed := time.Since(start)
		metrics.RecordHTTPRequest(c.Method(), route, status, elapsed)

		ev := logging.Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			ev = logging.Ctx(c.UserContext()).Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Err(err).
			Msg("request")

		return err
	}
}
