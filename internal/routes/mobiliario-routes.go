package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/controllers"
	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/middleware"
)

func runMobiliarioRouter(api *echo.Group, mobiliarioService services.MobiliarioServiceInterface, authMW echo.MiddlewareFunc, guard *middleware.PermissionGuard, logger *zap.Logger) {
	ctrl := controllers.NewMobiliarioController(mobiliarioService, logger)

	mobiliario := api.Group("/mobiliario", authMW)
	mobiliario.GET("", ctrl.GetMobiliario, guard.RequirePermission(authz.ModuloMobiliario, authz.Leer))
	mobiliario.GET("/:id", ctrl.GetMueble, guard.RequirePermission(authz.ModuloMobiliario, authz.Leer))
	mobiliario.POST("", ctrl.CreateMueble, guard.RequirePermission(authz.ModuloMobiliario, authz.Crear))
	mobiliario.PUT("/:id", ctrl.UpdateMueble, guard.RequirePermission(authz.ModuloMobiliario, authz.Actualizar))
	mobiliario.DELETE("/:id", ctrl.DeleteMueble, guard.RequirePermission(authz.ModuloMobiliario, authz.Eliminar))
}
