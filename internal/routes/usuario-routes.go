package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/controllers"
	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/middleware"
)

func runUsuarioRouter(api *echo.Group, usuarioService services.UsuarioServiceInterface, authMW echo.MiddlewareFunc, guard *middleware.PermissionGuard, logger *zap.Logger) {
	ctrl := controllers.NewUsuarioController(usuarioService, logger)

	usuarios := api.Group("/usuarios", authMW)
	// La lista de responsables alimenta los selectores de asignación de
	// activos; no exige el módulo de usuarios.
	usuarios.GET("/responsables", ctrl.GetResponsables)
	usuarios.POST("/responsables", ctrl.CreateResponsable, guard.RequirePermission(authz.ModuloUsuarios, authz.Crear))
	usuarios.GET("/accesos", ctrl.GetAccesos, guard.RequirePermission(authz.ModuloUsuarios, authz.Leer))
	usuarios.POST("/accesos", ctrl.CreateAcceso, guard.RequirePermission(authz.ModuloUsuarios, authz.Crear))
}
