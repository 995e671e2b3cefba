package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về log entry gắn thông tin của request hiện tại
// (request ID, method, path, IP) để trace trong log file.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	// Request ID do middleware requestid set vào Locals, fallback sang header
	var requestID string
	if rid, ok := c.Locals("requestid").(string); ok {
		requestID = rid
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry
}

// WithFields trả về log entry với các fields bổ sung.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError trả về log entry với error.
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}
