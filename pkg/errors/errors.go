package errors

import (
	"fmt"
	"net/http"
)

var (
	// Tokens
	ErrMetodoFirmaInvalido = fmt.Errorf("método de firma del token inválido")
	ErrTokenInvalido       = fmt.Errorf("token inválido")
	ErrTokenExpirado       = fmt.Errorf("el token ha expirado")

	// Autenticación / autorización
	ErrEncabezadoAuthVacio     = fmt.Errorf("encabezado de autorización ausente")
	ErrEncabezadoAuthInvalido  = fmt.Errorf("formato de encabezado de autorización inválido")
	ErrCredencialesInvalidas   = fmt.Errorf("credenciales inválidas")
	ErrNoAutorizado            = fmt.Errorf("no autorizado")
	ErrAccesoDenegado          = fmt.Errorf("sin permisos en este módulo")
	ErrUsuarioNoEnContexto     = fmt.Errorf("usuario no encontrado en el contexto de la petición")

	// Generales
	ErrNoEncontrado     = fmt.Errorf("registro no encontrado")
	ErrConflicto        = fmt.Errorf("el registro ya existe")
	ErrPeticionInvalida = fmt.Errorf("petición inválida")
	ErrInterno          = fmt.Errorf("error interno del servidor")
)

// HttpError carries an HTTP status code and a user-facing message, plus the
// internal error and context for logging only.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}
