// Package middleware provides the fiber middleware shared by every route.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-ID"

	localsRequestID = "request_id"
	localsLogger    = "logger"
)

// RequestID reuses an incoming X-Request-ID or generates one, and echoes it
// on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localsRequestID, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// RequestLogger stores a request scoped logger in the context and logs
// every request once it has been handled.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLogger := log.With(
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		c.Locals(localsLogger, reqLogger)

		chainErr := c.Next()
		if chainErr != nil {
			// Let the app error handler write the response before logging it.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.IP()),
		}
		if q := string(c.Request().URI().QueryString()); q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if chainErr != nil {
			fields = append(fields, zap.Error(chainErr))
		}

		msg := "HTTP request"
		switch {
		case status >= fiber.StatusInternalServerError:
			reqLogger.Error(msg, fields...)
		case status >= fiber.StatusBadRequest:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
		return nil
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside of it.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsRequestID).(string)
	return id
}

// Logger returns the request scoped logger, or a no-op logger outside of
// RequestLogger.
func Logger(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(localsLogger).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
