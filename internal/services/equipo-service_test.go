package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	apperrors "inventario-iuca/pkg/errors"
)

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipoRepo struct {
	seriesExistentes map[string]bool
	equipos          map[uint64]*dto.EquipoDTO
	nextID           uint64

	creados      int
	specsInserts [][]dto.CreateEspecificacionDTO
	replaces     [][]dto.CreateEspecificacionDTO
	updates      int
}

func newFakeEquipoRepo() *fakeEquipoRepo {
	return &fakeEquipoRepo{
		seriesExistentes: map[string]bool{},
		equipos:          map[uint64]*dto.EquipoDTO{},
		nextID:           1,
	}
}

func (f *fakeEquipoRepo) GetEquipos(ctx context.Context, filter dto.EquipoFilter) ([]dto.EquipoDTO, uint64, error) {
	out := make([]dto.EquipoDTO, 0, len(f.equipos))
	for _, e := range f.equipos {
		out = append(out, *e)
	}
	return out, uint64(len(out)), nil
}

func (f *fakeEquipoRepo) FindEquipo(ctx context.Context, id uint64) (*dto.EquipoDTO, error) {
	e, ok := f.equipos[id]
	if !ok {
		return nil, apperrors.ErrNoEncontrado
	}
	return e, nil
}

func (f *fakeEquipoRepo) GetEspecificaciones(ctx context.Context, equipoID uint64) ([]dto.EspecificacionDTO, error) {
	return nil, nil
}

func (f *fakeEquipoRepo) ExisteNumeroSerie(ctx context.Context, numeroSerie string, excludeID uint64) (bool, error) {
	return f.seriesExistentes[numeroSerie], nil
}

func (f *fakeEquipoRepo) CreateEquipo(ctx context.Context, tx pgx.Tx, payload dto.CreateEquipoDTO, creadoPor uint64, sucursal string) (uint64, error) {
	id := f.nextID
	f.nextID++
	f.creados++
	f.equipos[id] = &dto.EquipoDTO{ID: id, NombreActivo: payload.NombreActivo, SucursalNombre: sucursal}
	return id, nil
}

func (f *fakeEquipoRepo) InsertEspecificaciones(ctx context.Context, tx pgx.Tx, equipoID uint64, specs []dto.CreateEspecificacionDTO) error {
	f.specsInserts = append(f.specsInserts, specs)
	return nil
}

func (f *fakeEquipoRepo) ReplaceEspecificaciones(ctx context.Context, tx pgx.Tx, equipoID uint64, specs []dto.CreateEspecificacionDTO) error {
	f.replaces = append(f.replaces, specs)
	return nil
}

func (f *fakeEquipoRepo) UpdateEquipo(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateEquipoDTO, modificadoPor uint64) error {
	if _, ok := f.equipos[id]; !ok {
		return apperrors.ErrNoEncontrado
	}
	f.updates++
	return nil
}

func (f *fakeEquipoRepo) DeleteEquipo(ctx context.Context, id uint64) error {
	if _, ok := f.equipos[id]; !ok {
		return apperrors.ErrNoEncontrado
	}
	delete(f.equipos, id)
	return nil
}

func TestEquipoService_CreateRechazaSerieDuplicada(t *testing.T) {
	repo := newFakeEquipoRepo()
	repo.seriesExistentes["SN123"] = true
	svc := NewEquipoService(repo, &fakeTxManager{}, "Tulancingo", zap.NewNop())

	serie := "SN123"
	_, err := svc.CreateEquipo(context.Background(), dto.CreateEquipoDTO{
		NombreActivo: "LAP-001",
		NumeroSerie:  &serie,
	}, 1)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "El número de serie ya existe", httpErr.Message)
	assert.Zero(t, repo.creados)
}

func TestEquipoService_CreateInsertaEspecificaciones(t *testing.T) {
	repo := newFakeEquipoRepo()
	svc := NewEquipoService(repo, &fakeTxManager{}, "Tulancingo", zap.NewNop())

	specs := []dto.CreateEspecificacionDTO{
		{Nombre: "RAM", Valor: "16 GB"},
		{Nombre: "Disco", Valor: "512 GB"},
	}
	equipo, err := svc.CreateEquipo(context.Background(), dto.CreateEquipoDTO{
		NombreActivo:     "LAP-001",
		Especificaciones: specs,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tulancingo", equipo.SucursalNombre)
	require.Len(t, repo.specsInserts, 1)
	assert.Equal(t, specs, repo.specsInserts[0])
}

func TestEquipoService_UpdateSinEspecificacionesNoLasToca(t *testing.T) {
	repo := newFakeEquipoRepo()
	svc := NewEquipoService(repo, &fakeTxManager{}, "Tulancingo", zap.NewNop())

	equipo, err := svc.CreateEquipo(context.Background(), dto.CreateEquipoDTO{NombreActivo: "LAP-001"}, 1)
	require.NoError(t, err)

	marca := "Lenovo"
	_, err = svc.UpdateEquipo(context.Background(), equipo.ID, dto.UpdateEquipoDTO{Marca: &marca}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
	assert.Empty(t, repo.replaces)
}

func TestEquipoService_UpdateReemplazaListaCompleta(t *testing.T) {
	repo := newFakeEquipoRepo()
	svc := NewEquipoService(repo, &fakeTxManager{}, "Tulancingo", zap.NewNop())

	equipo, err := svc.CreateEquipo(context.Background(), dto.CreateEquipoDTO{NombreActivo: "LAP-001"}, 1)
	require.NoError(t, err)

	nuevas := []dto.CreateEspecificacionDTO{{Nombre: "RAM", Valor: "32 GB"}}
	_, err = svc.UpdateEquipo(context.Background(), equipo.ID, dto.UpdateEquipoDTO{Especificaciones: &nuevas}, 1)
	require.NoError(t, err)
	require.Len(t, repo.replaces, 1)
	assert.Equal(t, nuevas, repo.replaces[0])

	// Lista vacía no nula: se reemplaza por nada.
	vacias := []dto.CreateEspecificacionDTO{}
	_, err = svc.UpdateEquipo(context.Background(), equipo.ID, dto.UpdateEquipoDTO{Especificaciones: &vacias}, 1)
	require.NoError(t, err)
	require.Len(t, repo.replaces, 2)
	assert.Empty(t, repo.replaces[1])
}

func TestEquipoService_UpdateInexistente(t *testing.T) {
	repo := newFakeEquipoRepo()
	svc := NewEquipoService(repo, &fakeTxManager{}, "Tulancingo", zap.NewNop())

	_, err := svc.UpdateEquipo(context.Background(), 99, dto.UpdateEquipoDTO{}, 1)
	assert.ErrorIs(t, err, apperrors.ErrNoEncontrado)
}
