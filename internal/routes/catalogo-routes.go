package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/controllers"
	"inventario-iuca/internal/services"
)

// Los catálogos son de solo lectura y no tienen módulo de permisos propio;
// basta con estar autenticado.
func runCatalogoRouter(api *echo.Group, catalogoService services.CatalogoServiceInterface, authMW echo.MiddlewareFunc, logger *zap.Logger) {
	ctrl := controllers.NewCatalogoController(catalogoService, logger)

	catalogos := api.Group("/catalogos", authMW)
	catalogos.GET("/areas", ctrl.GetAreas)
	catalogos.GET("/tipos-activo", ctrl.GetTiposActivo)
	catalogos.GET("/estados", ctrl.GetEstados)
	catalogos.GET("/tipos-mobiliario", ctrl.GetTiposMobiliario)
	catalogos.GET("/roles", ctrl.GetRoles)
}
