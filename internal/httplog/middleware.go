// Package httplog tags every request with an id and writes one access-log line per request.
package httplog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const HeaderRequestID = "X-Request-ID"

func New(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals("request_id", reqID)

		err := c.Next()
		if err != nil {
			// let fiber's error handler set the status before logging it
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		entry := log.WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"took":       time.Since(start),
		})

		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}

		return nil
	}
}
