package middleware

import (
	"time"

	"tambar-be/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Logging logs one line per request with method, path, status and duration.
func Logging(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		log := logger.FromCtx(c.Request().Context())

		err := next(c)

		log.Info("incoming request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("ip", c.RealIP()),
			zap.Int("status", c.Response().Status),
			zap.Duration("duration_ms", time.Since(start)),
		)

		return err
	}
}
