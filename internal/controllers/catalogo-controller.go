package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/utils"
)

type CatalogoController struct {
	catalogoService services.CatalogoServiceInterface
	logger          *zap.Logger
}

func NewCatalogoController(catalogoService services.CatalogoServiceInterface, logger *zap.Logger) *CatalogoController {
	return &CatalogoController{catalogoService: catalogoService, logger: logger}
}

func (ctrl *CatalogoController) GetAreas(c echo.Context) error {
	areas, err := ctrl.catalogoService.GetAreas(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, areas)
}

func (ctrl *CatalogoController) GetTiposActivo(c echo.Context) error {
	tipos, err := ctrl.catalogoService.GetTiposActivo(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, tipos)
}

func (ctrl *CatalogoController) GetEstados(c echo.Context) error {
	estados, err := ctrl.catalogoService.GetEstados(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, estados)
}

func (ctrl *CatalogoController) GetTiposMobiliario(c echo.Context) error {
	tipos, err := ctrl.catalogoService.GetTiposMobiliario(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, tipos)
}

func (ctrl *CatalogoController) GetRoles(c echo.Context) error {
	roles, err := ctrl.catalogoService.GetRoles(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, roles)
}
