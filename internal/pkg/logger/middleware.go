package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every HTTP request with latency and status
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				Int("status", c.Response().Status),
				Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, ErrorField(err))
				zl.Logger.Warn("HTTP request", fields...)
				return err
			}

			zl.Logger.Info("HTTP request", fields...)
			return err
		}
	}
}
