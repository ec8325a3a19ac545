package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/service"
	"inventario-iuca/pkg/utils"
)

type fakeAccesoRepo struct {
	porCorreo       map[string]*entities.Acceso
	vistas          map[uint64]*dto.AccesoDTO
	ultimoAccesoIDs []uint64
	ultimoHash      string
}

func newFakeAccesoRepo() *fakeAccesoRepo {
	return &fakeAccesoRepo{
		porCorreo: map[string]*entities.Acceso{},
		vistas:    map[uint64]*dto.AccesoDTO{},
	}
}

func (f *fakeAccesoRepo) FindAccesoByCorreo(ctx context.Context, correo string) (*entities.Acceso, error) {
	a, ok := f.porCorreo[correo]
	if !ok {
		return nil, apperrors.ErrNoEncontrado
	}
	return a, nil
}

func (f *fakeAccesoRepo) FindAccesoByID(ctx context.Context, id uint64) (*entities.Acceso, error) {
	for _, a := range f.porCorreo {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrNoEncontrado
}

func (f *fakeAccesoRepo) GetAccesoView(ctx context.Context, id uint64) (*dto.AccesoDTO, error) {
	v, ok := f.vistas[id]
	if !ok {
		return nil, apperrors.ErrNoEncontrado
	}
	return v, nil
}

func (f *fakeAccesoRepo) GetAccesos(ctx context.Context) ([]dto.AccesoDTO, error) {
	return nil, nil
}

func (f *fakeAccesoRepo) CreateAcceso(ctx context.Context, payload dto.CreateAccesoDTO, contrasenaHash string) (*dto.AccesoDTO, error) {
	f.ultimoHash = contrasenaHash
	return &dto.AccesoDTO{ID: uint64(len(f.porCorreo) + 1), NombreUsuario: payload.NombreUsuario, CorreoElectronico: payload.CorreoElectronico}, nil
}

func (f *fakeAccesoRepo) ExisteCorreo(ctx context.Context, correo string) (bool, error) {
	_, ok := f.porCorreo[correo]
	return ok, nil
}

func (f *fakeAccesoRepo) ActualizarUltimoAcceso(ctx context.Context, id uint64) error {
	f.ultimoAccesoIDs = append(f.ultimoAccesoIDs, id)
	return nil
}

func seedFakeAcceso(t *testing.T, repo *fakeAccesoRepo, correo, password string, rolID uint64) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	repo.porCorreo[correo] = &entities.Acceso{
		ID:                1,
		NombreUsuario:     "admin",
		CorreoElectronico: correo,
		ContrasenaHash:    hash,
		RolID:             null.Uint64From(rolID),
	}
	rol := "Administrador"
	repo.vistas[1] = &dto.AccesoDTO{
		ID:                1,
		NombreUsuario:     "admin",
		CorreoElectronico: correo,
		Rol:               &rol,
	}
}

func newTestJWT() service.JWTService {
	return service.NewJWTService("clave-de-prueba", time.Hour)
}

func TestAuthService_LoginExitoso(t *testing.T) {
	accesoRepo := newFakeAccesoRepo()
	seedFakeAcceso(t, accesoRepo, "admin@iuca.edu.mx", "Secreta123!", 3)
	permisoRepo := &fakePermisoRepo{lista: []dto.PermisoDTO{
		{RolID: 3, Modulo: "computo", PuedeLeer: true, PuedeCrear: true},
		{RolID: 3, Modulo: "historial", PuedeLeer: true},
	}}
	svc := NewAuthService(accesoRepo, permisoRepo, newTestJWT(), zap.NewNop())

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		CorreoElectronico: "admin@iuca.edu.mx",
		Password:          "Secreta123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Usuario.NombreUsuario)
	require.Contains(t, resp.Permisos, "computo")
	assert.True(t, resp.Permisos["computo"].PuedeCrear)
	require.Contains(t, resp.Permisos, "historial")
	assert.False(t, resp.Permisos["historial"].PuedeCrear)
	assert.Equal(t, []uint64{1}, accesoRepo.ultimoAccesoIDs)
}

func TestAuthService_CorreoInexistente(t *testing.T) {
	svc := NewAuthService(newFakeAccesoRepo(), &fakePermisoRepo{}, newTestJWT(), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		CorreoElectronico: "nadie@iuca.edu.mx",
		Password:          "loquesea",
	})
	assert.ErrorIs(t, err, apperrors.ErrCredencialesInvalidas)
}

func TestAuthService_PasswordIncorrecta(t *testing.T) {
	accesoRepo := newFakeAccesoRepo()
	seedFakeAcceso(t, accesoRepo, "admin@iuca.edu.mx", "Secreta123!", 3)
	svc := NewAuthService(accesoRepo, &fakePermisoRepo{}, newTestJWT(), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		CorreoElectronico: "admin@iuca.edu.mx",
		Password:          "otra",
	})
	assert.ErrorIs(t, err, apperrors.ErrCredencialesInvalidas)
	// Un intento fallido no cuenta como acceso.
	assert.Empty(t, accesoRepo.ultimoAccesoIDs)
}

func TestAuthService_TokenValidaIdentidad(t *testing.T) {
	accesoRepo := newFakeAccesoRepo()
	seedFakeAcceso(t, accesoRepo, "admin@iuca.edu.mx", "Secreta123!", 3)
	jwtSvc := newTestJWT()
	svc := NewAuthService(accesoRepo, &fakePermisoRepo{}, jwtSvc, zap.NewNop())

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		CorreoElectronico: "admin@iuca.edu.mx",
		Password:          "Secreta123!",
	})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.AccesoID)
}
