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

type UsuarioController struct {
	usuarioService services.UsuarioServiceInterface
	logger         *zap.Logger
}

func NewUsuarioController(usuarioService services.UsuarioServiceInterface, logger *zap.Logger) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService, logger: logger}
}

// GetResponsables lista a las personas asignables como responsables de un
// activo; cualquier cuenta autenticada puede consultarla.
func (ctrl *UsuarioController) GetResponsables(c echo.Context) error {
	responsables, err := ctrl.usuarioService.GetResponsables(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, responsables)
}

func (ctrl *UsuarioController) CreateResponsable(c echo.Context) error {
	var payload dto.CreateUsuarioDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrPeticionInvalida, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	usuario, err := ctrl.usuarioService.CreateResponsable(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"mensaje": "Usuario registrado correctamente",
		"usuario": usuario,
	})
}

func (ctrl *UsuarioController) GetAccesos(c echo.Context) error {
	accesos, err := ctrl.usuarioService.GetAccesos(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, accesos)
}

func (ctrl *UsuarioController) CreateAcceso(c echo.Context) error {
	var payload dto.CreateAccesoDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrPeticionInvalida, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	acceso, err := ctrl.usuarioService.CreateAcceso(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"mensaje": "Acceso creado correctamente",
		"acceso":  acceso,
	})
}
