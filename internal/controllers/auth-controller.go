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

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrPeticionInvalida, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	response, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusOK, response)
}

// Me devuelve la identidad del token vigente; el frontend lo usa para
// restaurar sesión sin volver a pedir credenciales.
func (ctrl *AuthController) Me(c echo.Context) error {
	accesoID, err := utils.GetAccesoIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrNoAutorizado, ctrl.logger)
	}

	vista, err := ctrl.authService.GetAccesoView(c.Request().Context(), accesoID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return c.JSON(http.StatusOK, vista)
}

// Logout es un reconocimiento sin estado: el cliente descarta el token.
func (ctrl *AuthController) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"mensaje": "Sesión cerrada"})
}
