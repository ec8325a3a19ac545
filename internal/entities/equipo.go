package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipo struct {
	ID                uint64      `json:"id_activo"`
	TipoActivoID      uint64      `json:"tipo_activo_id"`
	NombreActivo      string      `json:"nombre_activo"`
	Marca             null.String `json:"marca"`
	Modelo            null.String `json:"modelo"`
	NumeroSerie       null.String `json:"numero_serie"`
	EstadoID          uint64      `json:"estado_id"`
	FechaRegistro     time.Time   `json:"fecha_registro"`
	Observaciones     null.String `json:"observaciones"`
	UsuarioAsignadoID null.Uint64 `json:"usuario_asignado_id"`
	SucursalNombre    string      `json:"sucursal_nombre"`
	CreadoPor         null.Uint64 `json:"-"`
	FechaCreacion     time.Time   `json:"fecha_creacion"`
	ModificadoPor     null.Uint64 `json:"-"`
	FechaModificacion time.Time   `json:"fecha_modificacion"`
}

// Especificacion es una fila hija de Equipo; se elimina en cascada con él.
type Especificacion struct {
	ID       uint64 `json:"id_especificacion"`
	EquipoID uint64 `json:"equipo_id"`
	Nombre   string `json:"nombre_especificacion"`
	Valor    string `json:"valor_especificacion"`
	Orden    int    `json:"orden"`
}
