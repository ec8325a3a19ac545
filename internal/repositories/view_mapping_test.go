package repositories

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/entities"
)

func TestEquipoViewToDTO(t *testing.T) {
	registro := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	v := dbEquipoView{
		equipo: entities.Equipo{
			ID:                7,
			TipoActivoID:      2,
			NombreActivo:      "LAP-007",
			Marca:             null.StringFrom("Dell"),
			NumeroSerie:       null.StringFrom("SN123"),
			EstadoID:          1,
			FechaRegistro:     registro,
			UsuarioAsignadoID: null.Uint64From(4),
			SucursalNombre:    "Tulancingo",
			FechaCreacion:     registro,
			FechaModificacion: registro,
		},
		tipo:        null.StringFrom("Laptop"),
		estado:      null.StringFrom("Activo"),
		responsable: null.StringFrom("Laura Mendoza"),
	}

	d := v.ToDTO()

	assert.Equal(t, uint64(7), d.ID)
	require.NotNil(t, d.Marca)
	assert.Equal(t, "Dell", *d.Marca)
	require.NotNil(t, d.NumeroSerie)
	assert.Equal(t, "SN123", *d.NumeroSerie)
	require.NotNil(t, d.Responsable)
	assert.Equal(t, "Laura Mendoza", *d.Responsable)
	assert.Nil(t, d.Modelo)
	assert.Nil(t, d.ColorEstado)
	assert.Equal(t, "2026-03-14", d.FechaRegistro)
	assert.Equal(t, "2026-03-14 09:30:00", d.FechaCreacion)
}

func TestMobiliarioViewToDTOFechaAsignacionOpcional(t *testing.T) {
	creacion := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	base := entities.Mobiliario{
		ID:                3,
		TipoMobiliarioID:  1,
		EstadoID:          1,
		SucursalNombre:    "Tulancingo",
		FechaCreacion:     creacion,
		FechaModificacion: creacion,
	}

	sinFecha := dbMobiliarioView{mueble: base}
	assert.Empty(t, sinFecha.ToDTO().FechaAsignacion)

	conFecha := base
	conFecha.FechaAsignacion = null.TimeFrom(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	v := dbMobiliarioView{mueble: conFecha, responsable: null.StringFrom("Pedro Ramírez")}
	d := v.ToDTO()
	assert.Equal(t, "2026-02-10", d.FechaAsignacion)
	require.NotNil(t, d.Responsable)
	assert.Equal(t, "Pedro Ramírez", *d.Responsable)
}

func TestMovimientoToDTO(t *testing.T) {
	fecha := time.Date(2026, 5, 20, 16, 45, 10, 0, time.UTC)
	m := entities.Movimiento{
		ID:              11,
		TipoRegistro:    "equipo",
		IDRegistro:      7,
		TipoMovimiento:  "asignacion",
		UsuarioNuevoID:  null.Uint64From(4),
		RealizadoPor:    null.Uint64From(1),
		FechaMovimiento: fecha,
	}

	d := movimientoToDTO(&m)

	assert.Equal(t, "equipo", d.TipoRegistro)
	require.NotNil(t, d.UsuarioNuevoID)
	assert.Equal(t, uint64(4), *d.UsuarioNuevoID)
	assert.Nil(t, d.UsuarioAnteriorID)
	assert.Nil(t, d.CampoModificado)
	assert.Equal(t, "2026-05-20 16:45:10", d.FechaMovimiento)
}

func TestPermisoToDTO(t *testing.T) {
	p := entities.Permiso{
		ID:     5,
		RolID:  2,
		Modulo: authz.ModuloComputo,
		Flags: authz.PermissionSet{
			Crear:    true,
			Leer:     true,
			Exportar: true,
		},
	}

	d := permisoToDTO(&p)

	assert.Equal(t, authz.ModuloComputo, d.Modulo)
	assert.True(t, d.PuedeCrear)
	assert.True(t, d.PuedeLeer)
	assert.True(t, d.PuedeExportar)
	assert.False(t, d.PuedeActualizar)
	assert.False(t, d.PuedeEliminar)
}

func TestUsuarioViewToDTO(t *testing.T) {
	v := dbUsuarioView{
		usuario: entities.Usuario{
			ID:           4,
			NumeroNomina: null.StringFrom("N-0042"),
			Nombre:       "Laura Mendoza",
			AreaID:       null.Uint64From(2),
		},
		area: null.StringFrom("Sistemas"),
	}

	d := v.ToDTO()

	assert.Equal(t, "Laura Mendoza", d.Nombre)
	require.NotNil(t, d.NumeroNomina)
	assert.Equal(t, "N-0042", *d.NumeroNomina)
	require.NotNil(t, d.Area)
	assert.Equal(t, "Sistemas", *d.Area)
	assert.Nil(t, d.Puesto)
}
