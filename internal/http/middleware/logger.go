package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"docqa/internal/logging"
)

// LoggerLocalKey is the key under which the request-scoped log entry is stored.
const LoggerLocalKey = "logger"

// Logger logs each HTTP request as one JSON line with request_id, method,
// path, status and latency (milliseconds). Requests answered with 5xx are
// logged at error level.
//
// Handlers can fetch the request-scoped entry with LoggerFromCtx.
func Logger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		entry := log.WithField("request_id", rid)
		c.Locals(LoggerLocalKey, entry)

		err := c.Next()

		status := c.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := entry.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": float64(time.Since(start).Microseconds()) / 1000,
		})
		if status >= fiber.StatusInternalServerError {
			fields.Error("request")
		} else {
			fields.Info("request")
		}

		return err
	}
}

// LoggerWithWriter is Logger backed by a fresh JSON logger writing to w.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logging.New(w, loc, "info"))
}

// LoggerFromCtx returns the entry stored by Logger, or the standard logger.
func LoggerFromCtx(c *fiber.Ctx) logrus.FieldLogger {
	if l, ok := c.Locals(LoggerLocalKey).(logrus.FieldLogger); ok {
		return l
	}
	return logrus.StandardLogger()
}
