package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Mobiliario struct {
	ID                uint64      `json:"id_mueble"`
	TipoMobiliarioID  uint64      `json:"tipo_mobiliario_id"`
	Marca             null.String `json:"marca"`
	Modelo            null.String `json:"modelo"`
	Color             null.String `json:"color"`
	Caracteristicas   null.String `json:"caracteristicas"`
	Observaciones     null.String `json:"observaciones"`
	EstadoID          uint64      `json:"estado_id"`
	UsuarioAsignadoID null.Uint64 `json:"usuario_asignado_id"`
	FechaAsignacion   null.Time   `json:"fecha_asignacion"`
	SucursalNombre    string      `json:"sucursal_nombre"`
	CreadoPor         null.Uint64 `json:"-"`
	FechaCreacion     time.Time   `json:"fecha_creacion"`
	ModificadoPor     null.Uint64 `json:"-"`
	FechaModificacion time.Time   `json:"fecha_modificacion"`
}
