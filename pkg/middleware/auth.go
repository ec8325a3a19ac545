package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/pkg/contextkeys"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/service"
	"inventario-iuca/pkg/utils"
)

// AuthMiddleware valida el token Bearer y deja el id de acceso en el contexto
// de la petición. Sin token válido no se llega a ningún handler protegido.
func AuthMiddleware(jwtService service.JWTService, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return utils.ErrorResponse(c, apperrors.ErrEncabezadoAuthVacio, logger)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.ErrorResponse(c, apperrors.ErrEncabezadoAuthInvalido, logger)
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				return utils.ErrorResponse(c, err, logger)
			}

			ctx := context.WithValue(c.Request().Context(), contextkeys.AccesoIDKey, claims.AccesoID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
