package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	apperrors "inventario-iuca/pkg/errors"
	"inventario-iuca/pkg/utils"
)

type fakeUsuarioRepo struct {
	nominas  map[string]bool
	creados  int
	ultimoID uint64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{nominas: map[string]bool{}}
}

func (f *fakeUsuarioRepo) GetUsuarios(ctx context.Context) ([]dto.UsuarioDTO, error) {
	return nil, nil
}

func (f *fakeUsuarioRepo) FindUsuario(ctx context.Context, id uint64) (*dto.UsuarioDTO, error) {
	return nil, apperrors.ErrNoEncontrado
}

func (f *fakeUsuarioRepo) CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error) {
	f.creados++
	f.ultimoID++
	if payload.NumeroNomina != nil {
		f.nominas[*payload.NumeroNomina] = true
	}
	return &dto.UsuarioDTO{ID: f.ultimoID, NumeroNomina: payload.NumeroNomina, Nombre: payload.NombreUsuario}, nil
}

func (f *fakeUsuarioRepo) ExisteNumeroNomina(ctx context.Context, numeroNomina string) (bool, error) {
	return f.nominas[numeroNomina], nil
}

func TestCreateResponsableRechazaNominaDuplicada(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.nominas["N-0042"] = true
	svc := NewUsuarioService(repo, newFakeAccesoRepo(), zap.NewNop())

	nomina := "N-0042"
	_, err := svc.CreateResponsable(context.Background(), dto.CreateUsuarioDTO{
		NumeroNomina:  &nomina,
		NombreUsuario: "Pedro Ramírez",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "Número de nómina ya existe", httpErr.Message)
	assert.Equal(t, 0, repo.creados)
}

func TestCreateResponsableSinNomina(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := NewUsuarioService(repo, newFakeAccesoRepo(), zap.NewNop())

	usuario, err := svc.CreateResponsable(context.Background(), dto.CreateUsuarioDTO{
		NombreUsuario: "Ana Torres",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", usuario.Nombre)
	assert.Nil(t, usuario.NumeroNomina)
	assert.Equal(t, 1, repo.creados)
}

func TestCreateAccesoRechazaCorreoDuplicado(t *testing.T) {
	accesoRepo := newFakeAccesoRepo()
	seedFakeAcceso(t, accesoRepo, "ana@iuca.edu.mx", "Secreta1!", 1)
	svc := NewUsuarioService(newFakeUsuarioRepo(), accesoRepo, zap.NewNop())

	_, err := svc.CreateAcceso(context.Background(), dto.CreateAccesoDTO{
		NombreUsuario:     "Ana Torres",
		CorreoElectronico: "ana@iuca.edu.mx",
		Password:          "OtraClave1!",
		RolID:             1,
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "El correo ya está registrado", httpErr.Message)
}

func TestCreateAccesoGuardaHashVerificable(t *testing.T) {
	accesoRepo := newFakeAccesoRepo()
	svc := NewUsuarioService(newFakeUsuarioRepo(), accesoRepo, zap.NewNop())

	_, err := svc.CreateAcceso(context.Background(), dto.CreateAccesoDTO{
		NombreUsuario:     "Luis Vega",
		CorreoElectronico: "luis@iuca.edu.mx",
		Password:          "ClaveNueva1!",
		RolID:             2,
	})

	require.NoError(t, err)
	require.NotEmpty(t, accesoRepo.ultimoHash)
	assert.NoError(t, utils.ComparePasswords(accesoRepo.ultimoHash, "ClaveNueva1!"))
	assert.Error(t, utils.ComparePasswords(accesoRepo.ultimoHash, "otra"))
}
