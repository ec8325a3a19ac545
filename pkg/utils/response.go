package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "inventario-iuca/pkg/errors"
)

// ErrorBody es la forma única de error del API: {"error": mensaje}.
type ErrorBody struct {
	Error string `json:"error"`
}

var sentinelStatus = map[error]int{
	apperrors.ErrNoEncontrado:            http.StatusNotFound,
	apperrors.ErrConflicto:               http.StatusConflict,
	apperrors.ErrPeticionInvalida:        http.StatusBadRequest,
	apperrors.ErrCredencialesInvalidas:   http.StatusUnauthorized,
	apperrors.ErrNoAutorizado:            http.StatusUnauthorized,
	apperrors.ErrTokenInvalido:           http.StatusUnauthorized,
	apperrors.ErrTokenExpirado:           http.StatusUnauthorized,
	apperrors.ErrEncabezadoAuthVacio:     http.StatusUnauthorized,
	apperrors.ErrEncabezadoAuthInvalido:  http.StatusUnauthorized,
	apperrors.ErrAccesoDenegado:          http.StatusForbidden,
}

// ErrorResponse traduce un error a la respuesta JSON del contrato. Los
// detalles internos van al log, nunca al cliente.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("error http",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("campo '%s' no pasó la regla '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: strings.Join(msgs, "; ")})
	}

	for sentinel, status := range sentinelStatus {
		if errors.Is(err, sentinel) {
			return c.JSON(status, ErrorBody{Error: sentinel.Error()})
		}
	}

	logger.Error("error inesperado", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "error interno del servidor"})
}
