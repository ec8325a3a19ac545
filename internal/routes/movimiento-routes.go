package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/controllers"
	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/middleware"
)

func runMovimientoRouter(api *echo.Group, movimientoService services.MovimientoServiceInterface, authMW echo.MiddlewareFunc, guard *middleware.PermissionGuard, logger *zap.Logger) {
	ctrl := controllers.NewMovimientoController(movimientoService, logger)

	historial := api.Group("/historial", authMW)
	historial.GET("", ctrl.GetMovimientos, guard.RequirePermission(authz.ModuloHistorial, authz.Leer))
	historial.POST("", ctrl.CreateMovimiento, guard.RequirePermission(authz.ModuloHistorial, authz.Crear))
}
