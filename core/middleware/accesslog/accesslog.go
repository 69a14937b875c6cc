package accesslog

import (
	"errors"
	"time"

	"maulepro-server/core/logger"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware writing one structured log line per request.
// It must run after rayid so the entry carries the request's RayID.
func New(l *zap.Logger) fiber.Handler {
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

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.String("ip", c.IP()),
			zap.Duration("duration", time.Since(start)),
		}
		if size := responseSize(c); size >= 0 {
			fields = append(fields, zap.String("size", humanize.Bytes(uint64(size))))
		}

		rl := logger.WithRayID(l, c)
		switch {
		case status >= fiber.StatusInternalServerError:
			rl.Error("Request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			rl.Warn("Request rejected", fields...)
		default:
			rl.Info("Request served", fields...)
		}

		return err
	}
}

// responseSize reports the body size without draining streamed bodies.
func responseSize(c *fiber.Ctx) int {
	resp := c.Response()
	if resp.IsBodyStream() {
		return resp.Header.ContentLength()
	}
	return len(resp.Body())
}
