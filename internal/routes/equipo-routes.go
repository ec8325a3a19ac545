package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/controllers"
	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/middleware"
)

func runEquipoRouter(api *echo.Group, equipoService services.EquipoServiceInterface, authMW echo.MiddlewareFunc, guard *middleware.PermissionGuard, logger *zap.Logger) {
	ctrl := controllers.NewEquipoController(equipoService, logger)

	equipos := api.Group("/equipos", authMW)
	equipos.GET("", ctrl.GetEquipos, guard.RequirePermission(authz.ModuloComputo, authz.Leer))
	equipos.GET("/export", ctrl.ExportEquipos, guard.RequirePermission(authz.ModuloComputo, authz.Exportar))
	equipos.GET("/:id", ctrl.GetEquipo, guard.RequirePermission(authz.ModuloComputo, authz.Leer))
	equipos.POST("", ctrl.CreateEquipo, guard.RequirePermission(authz.ModuloComputo, authz.Crear))
	equipos.PUT("/:id", ctrl.UpdateEquipo, guard.RequirePermission(authz.ModuloComputo, authz.Actualizar))
	equipos.DELETE("/:id", ctrl.DeleteEquipo, guard.RequirePermission(authz.ModuloComputo, authz.Eliminar))
}
