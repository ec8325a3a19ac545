package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/pkg/contextkeys"
)

const requestIDHeader = "X-Request-ID"

// RequestID asigna un identificador a cada petición y lo registra junto con
// método, ruta, estado y latencia al terminarla.
func RequestID(baseLogger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(requestIDHeader, requestID)

			ctx := context.WithValue(c.Request().Context(), contextkeys.RequestIDKey, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			inicio := time.Now()
			err := next(c)

			baseLogger.Info("petición atendida",
				zap.String("request_id", requestID),
				zap.String("metodo", c.Request().Method),
				zap.String("ruta", c.Path()),
				zap.Int("estado", c.Response().Status),
				zap.Duration("latencia", time.Since(inicio)),
			)
			return err
		}
	}
}
