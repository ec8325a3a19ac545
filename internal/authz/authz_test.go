package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionSet_Allows(t *testing.T) {
	set := PermissionSet{Leer: true, Exportar: true}

	assert.True(t, set.Allows(Leer))
	assert.True(t, set.Allows(Exportar))
	assert.False(t, set.Allows(Crear))
	assert.False(t, set.Allows(Actualizar))
	assert.False(t, set.Allows(Eliminar))
}

func TestPermissionMap_Allows(t *testing.T) {
	m := PermissionMap{
		ModuloComputo: {Crear: true, Leer: true},
	}

	assert.True(t, m.Allows(ModuloComputo, Leer))
	assert.False(t, m.Allows(ModuloComputo, Eliminar))

	// Sin fila para el módulo: todo denegado.
	assert.False(t, m.Allows(ModuloMobiliario, Leer))
}

func TestCapability_String(t *testing.T) {
	assert.Equal(t, "crear", Crear.String())
	assert.Equal(t, "eliminar", Eliminar.String())
	assert.Equal(t, "desconocida", Capability(99).String())
}
