package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/services"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/utils"
)

type EquipoController struct {
	equipoService services.EquipoServiceInterface
	logger        *zap.Logger
}

func NewEquipoController(equipoService services.EquipoServiceInterface, logger *zap.Logger) *EquipoController {
	return &EquipoController{equipoService: equipoService, logger: logger}
}

func parseIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrPeticionInvalida
	}
	return id, nil
}

func equipoFilterFromQuery(c echo.Context) (dto.EquipoFilter, uint64) {
	values := c.QueryParams()
	page, perPage, offset := utils.ParsePaginationParams(values)
	return dto.EquipoFilter{
		TipoActivoID:      utils.ParseUintParam(values, "tipo_activo_id"),
		EstadoID:          utils.ParseUintParam(values, "estado_id"),
		UsuarioAsignadoID: utils.ParseUintParam(values, "usuario_id"),
		Search:            values.Get("search"),
		Limit:             perPage,
		Offset:            offset,
	}, page
}

func (ctrl *EquipoController) GetEquipos(c echo.Context) error {
	filter, page := equipoFilterFromQuery(c)

	response, err := ctrl.equipoService.GetEquipos(c.Request().Context(), filter, page)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, response)
}

func (ctrl *EquipoController) GetEquipo(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipo, err := ctrl.equipoService.FindEquipo(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, equipo)
}

func (ctrl *EquipoController) CreateEquipo(c echo.Context) error {
	var payload dto.CreateEquipoDTO
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

	equipo, err := ctrl.equipoService.CreateEquipo(c.Request().Context(), payload, accesoID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"mensaje": "Equipo registrado correctamente",
		"equipo":  equipo,
	})
}

func (ctrl *EquipoController) UpdateEquipo(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateEquipoDTO
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

	equipo, err := ctrl.equipoService.UpdateEquipo(c.Request().Context(), id, payload, accesoID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"mensaje": "Equipo actualizado correctamente",
		"equipo":  equipo,
	})
}

func (ctrl *EquipoController) DeleteEquipo(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.equipoService.DeleteEquipo(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusOK, map[string]string{"mensaje": "Equipo eliminado correctamente"})
}

// ExportEquipos responde el listado filtrado como archivo xlsx adjunto.
func (ctrl *EquipoController) ExportEquipos(c echo.Context) error {
	filter, _ := equipoFilterFromQuery(c)

	buf, err := ctrl.equipoService.ExportEquipos(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	filename := fmt.Sprintf("equipos_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
