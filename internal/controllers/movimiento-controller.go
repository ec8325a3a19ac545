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

type MovimientoController struct {
	movimientoService services.MovimientoServiceInterface
	logger            *zap.Logger
}

func NewMovimientoController(movimientoService services.MovimientoServiceInterface, logger *zap.Logger) *MovimientoController {
	return &MovimientoController{movimientoService: movimientoService, logger: logger}
}

func (ctrl *MovimientoController) GetMovimientos(c echo.Context) error {
	values := c.QueryParams()
	page, perPage, offset := utils.ParsePaginationParams(values)
	filter := dto.MovimientoFilter{
		TipoRegistro: values.Get("tipo_registro"),
		IDRegistro:   utils.ParseUintParam(values, "id_registro"),
		Limit:        perPage,
		Offset:       offset,
	}

	response, err := ctrl.movimientoService.GetMovimientos(c.Request().Context(), filter, page)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, response)
}

func (ctrl *MovimientoController) CreateMovimiento(c echo.Context) error {
	var payload dto.CreateMovimientoDTO
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

	id, err := ctrl.movimientoService.RecordMovimiento(c.Request().Context(), payload, accesoID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"mensaje":       "Movimiento registrado correctamente",
		"id_movimiento": id,
	})
}
