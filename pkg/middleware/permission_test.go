package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/service"
)

type stubAccesoRepo struct {
	acceso *entities.Acceso
}

func (s *stubAccesoRepo) FindAccesoByCorreo(ctx context.Context, correo string) (*entities.Acceso, error) {
	return nil, apperrors.ErrNoEncontrado
}

func (s *stubAccesoRepo) FindAccesoByID(ctx context.Context, id uint64) (*entities.Acceso, error) {
	if s.acceso == nil || s.acceso.ID != id {
		return nil, apperrors.ErrNoEncontrado
	}
	return s.acceso, nil
}

func (s *stubAccesoRepo) GetAccesoView(ctx context.Context, id uint64) (*dto.AccesoDTO, error) {
	return nil, apperrors.ErrNoEncontrado
}

func (s *stubAccesoRepo) GetAccesos(ctx context.Context) ([]dto.AccesoDTO, error) { return nil, nil }

func (s *stubAccesoRepo) CreateAcceso(ctx context.Context, payload dto.CreateAccesoDTO, hash string) (*dto.AccesoDTO, error) {
	return nil, nil
}

func (s *stubAccesoRepo) ExisteCorreo(ctx context.Context, correo string) (bool, error) {
	return false, nil
}

func (s *stubAccesoRepo) ActualizarUltimoAcceso(ctx context.Context, id uint64) error { return nil }

type stubGate struct {
	mapa authz.PermissionMap
}

func (s *stubGate) GetPermissionMap(ctx context.Context, rolID uint64) (authz.PermissionMap, error) {
	return s.mapa, nil
}

func (s *stubGate) Can(ctx context.Context, rolID uint64, modulo string, capacidad authz.Capability) (bool, error) {
	return s.mapa.Allows(modulo, capacidad), nil
}

func (s *stubGate) InvalidateRol(ctx context.Context, rolID uint64) error { return nil }

func setupGuardTest(t *testing.T, acceso *entities.Acceso, mapa authz.PermissionMap) (*echo.Echo, string) {
	t.Helper()
	e := echo.New()
	jwtSvc := service.NewJWTService("clave-de-prueba", time.Hour)
	guard := NewPermissionGuard(&stubAccesoRepo{acceso: acceso}, &stubGate{mapa: mapa}, zap.NewNop())

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	authMW := AuthMiddleware(jwtSvc, zap.NewNop())
	e.GET("/equipos", ok, authMW, guard.RequirePermission(authz.ModuloComputo, authz.Leer))
	e.DELETE("/equipos/1", ok, authMW, guard.RequirePermission(authz.ModuloComputo, authz.Eliminar))

	token, err := jwtSvc.GenerateToken(1)
	require.NoError(t, err)
	return e, token
}

func doRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPermissionGuard_PermiteYDeniegaPorCapacidad(t *testing.T) {
	acceso := &entities.Acceso{ID: 1, RolID: null.Uint64From(2)}
	mapa := authz.PermissionMap{
		authz.ModuloComputo: {Leer: true},
	}
	e, token := setupGuardTest(t, acceso, mapa)

	rec := doRequest(e, http.MethodGet, "/equipos", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// El rol puede leer pero no tiene puede_eliminar.
	rec = doRequest(e, http.MethodDelete, "/equipos/1", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestPermissionGuard_CuentaSinRol(t *testing.T) {
	acceso := &entities.Acceso{ID: 1}
	e, token := setupGuardTest(t, acceso, authz.PermissionMap{})

	rec := doRequest(e, http.MethodGet, "/equipos", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPermissionGuard_CuentaEliminada(t *testing.T) {
	// El token es válido pero la cuenta ya no existe.
	e, token := setupGuardTest(t, nil, authz.PermissionMap{})

	rec := doRequest(e, http.MethodGet, "/equipos", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
