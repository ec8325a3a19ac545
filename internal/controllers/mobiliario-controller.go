package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/services"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/utils"
)

type MobiliarioController struct {
	mobiliarioService services.MobiliarioServiceInterface
	logger            *zap.Logger
}

func NewMobiliarioController(mobiliarioService services.MobiliarioServiceInterface, logger *zap.Logger) *MobiliarioController {
	return &MobiliarioController{mobiliarioService: mobiliarioService, logger: logger}
}

func (ctrl *MobiliarioController) GetMobiliario(c echo.Context) error {
	values := c.QueryParams()
	page, perPage, offset := utils.ParsePaginationParams(values)
	filter := dto.MobiliarioFilter{
		TipoMobiliarioID:  utils.ParseUintParam(values, "tipo_mobiliario_id"),
		EstadoID:          utils.ParseUintParam(values, "estado_id"),
		UsuarioAsignadoID: utils.ParseUintParam(values, "usuario_id"),
		Search:            values.Get("search"),
		Limit:             perPage,
		Offset:            offset,
	}

	response, err := ctrl.mobiliarioService.GetMobiliario(c.Request().Context(), filter, page)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, response)
}

func (ctrl *MobiliarioController) GetMueble(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	mueble, err := ctrl.mobiliarioService.FindMueble(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, mueble)
}

func (ctrl *MobiliarioController) CreateMueble(c echo.Context) error {
	var payload dto.CreateMobiliarioDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrPeticionInvalida, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	accesoID, err := utils.GetAccesoIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrNoAutorizado, ctrl.logger)
	}

	mueble, err := ctrl.mobiliarioService.CreateMueble(c.Request().Context(), payload, accesoID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"mensaje":    "Mobiliario registrado correctamente",
		"mobiliario": mueble,
	})
}

func (ctrl *MobiliarioController) UpdateMueble(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateMobiliarioDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrPeticionInvalida, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	accesoID, err := utils.GetAccesoIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrNoAutorizado, ctrl.logger)
	}

	mueble, err := ctrl.mobiliarioService.UpdateMueble(c.Request().Context(), id, payload, accesoID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"mensaje":    "Mobiliario actualizado correctamente",
		"mobiliario": mueble,
	})
}

func (ctrl *MobiliarioController) DeleteMueble(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.mobiliarioService.DeleteMueble(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusOK, map[string]string{"mensaje": "Mobiliario eliminado correctamente"})
}
