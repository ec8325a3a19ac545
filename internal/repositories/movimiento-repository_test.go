package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
)

func TestMovimientoRepository_RecordYFiltrado(t *testing.T) {
	requireTestDB(t)
	cleanupTables(t)
	tipoID, estadoID, usuarioID, accesoID := seedBase(t)

	equipoRepo := NewEquipoRepository(testPool, zap.NewNop())
	equipoID, err := createEquipoTx(t, equipoRepo, dto.CreateEquipoDTO{
		NombreActivo: "LAP-001",
		TipoActivoID: tipoID,
		EstadoID:     estadoID,
	}, accesoID)
	require.NoError(t, err)

	repo := NewMovimientoRepository(testPool)

	id, err := repo.Record(context.Background(), nil, dto.CreateMovimientoDTO{
		TipoRegistro:   "equipo",
		IDRegistro:     equipoID,
		TipoMovimiento: "asignacion",
		UsuarioNuevoID: &usuarioID,
	}, accesoID)
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = repo.Record(context.Background(), nil, dto.CreateMovimientoDTO{
		TipoRegistro:   "mobiliario",
		IDRegistro:     1,
		TipoMovimiento: "alta",
	}, accesoID)
	require.NoError(t, err)

	movimientos, total, err := repo.GetMovimientos(context.Background(), dto.MovimientoFilter{
		TipoRegistro: "equipo",
		Limit:        50,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, movimientos, 1)
	assert.Equal(t, "asignacion", movimientos[0].TipoMovimiento)
	assert.Equal(t, equipoID, movimientos[0].IDRegistro)
	require.NotNil(t, movimientos[0].UsuarioNuevoID)
	assert.Equal(t, usuarioID, *movimientos[0].UsuarioNuevoID)
	require.NotNil(t, movimientos[0].RealizadoPor)
	assert.Equal(t, accesoID, *movimientos[0].RealizadoPor)
	assert.NotEmpty(t, movimientos[0].FechaMovimiento)

	todos, total, err := repo.GetMovimientos(context.Background(), dto.MovimientoFilter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, todos, 2)
}
