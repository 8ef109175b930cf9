// Package middleware chứa các middleware dùng chung cho API.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"

	"github.com/arya-5990/devnaturaloiladmin/internal/logger"
)

// RequestLogger ghi audit log cho mỗi request: method, path, status, thời gian xử lý.
func RequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		entry := logger.GetAuditLogger().WithFields(logrus.Fields{
			"request_id": requestid.FromContext(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
		})

		if err != nil {
			entry.WithError(err).Warn("Request hoàn thành với lỗi")
			return err
		}

		entry.Info("Request hoàn thành")
		return nil
	}
}
