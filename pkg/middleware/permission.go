package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/repositories"
	"inventario-iuca/internal/services"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/utils"
)

// PermissionGuard produce middlewares que exigen una capacidad concreta sobre
// un módulo. La verificación es en dos pasos: identidad (401) y permiso (403).
type PermissionGuard struct {
	accesoRepo repositories.AccesoRepositoryInterface
	gate       services.GateServiceInterface
	logger     *zap.Logger
}

func NewPermissionGuard(
	accesoRepo repositories.AccesoRepositoryInterface,
	gate services.GateServiceInterface,
	logger *zap.Logger,
) *PermissionGuard {
	return &PermissionGuard{
		accesoRepo: accesoRepo,
		gate:       gate,
		logger:     logger,
	}
}

// RequirePermission deniega con 401 si la cuenta del token ya no existe y con
// 403 si la cuenta no tiene rol o el rol carece de la capacidad pedida.
func (g *PermissionGuard) RequirePermission(modulo string, capacidad authz.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			accesoID, err := utils.GetAccesoIDFromCtx(ctx)
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrNoAutorizado, g.logger)
			}

			acceso, err := g.accesoRepo.FindAccesoByID(ctx, accesoID)
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrNoAutorizado, g.logger)
			}

			if !acceso.RolID.Valid {
				return utils.ErrorResponse(c, apperrors.ErrAccesoDenegado, g.logger)
			}

			permitido, err := g.gate.Can(ctx, acceso.RolID.Uint64, modulo, capacidad)
			if err != nil {
				g.logger.Error("fallo al resolver permisos, se deniega",
					zap.Uint64("acceso_id", accesoID),
					zap.String("modulo", modulo),
					zap.Error(err))
				return utils.ErrorResponse(c, apperrors.ErrAccesoDenegado, g.logger)
			}
			if !permitido {
				g.logger.Info("acceso denegado",
					zap.Uint64("acceso_id", accesoID),
					zap.String("modulo", modulo),
					zap.String("capacidad", capacidad.String()))
				return utils.ErrorResponse(c, apperrors.ErrAccesoDenegado, g.logger)
			}

			return next(c)
		}
	}
}
