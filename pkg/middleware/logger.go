package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/pkg/utils"
)

// RequestID reuses X-Request-ID when the caller sends one and forwards it to
// the backend through the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.SetRequest(c.Request().WithContext(utils.WithRequestID(c.Request().Context(), id)))
			return next(c)
		}
	}
}

// InjectLogger stores a request-scoped logger under "logger" and writes one
// access line per request.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqLogger := logger.With(zap.String("request_id", utils.GetRequestIDFromCtx(c.Request().Context())))
			c.Set("logger", reqLogger)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			reqLogger.Info("http",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("took", time.Since(start)),
				zap.String("user", utils.GetUserNameFromCtx(c.Request().Context())),
			)
			return nil
		}
	}
}
