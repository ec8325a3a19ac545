package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Acceso es una identidad de inicio de sesión con rol; distinta de Usuario
// (responsable), que no inicia sesión.
type Acceso struct {
	ID                uint64      `json:"id_acceso"`
	NombreUsuario     string      `json:"nombre_usuario"`
	CorreoElectronico string      `json:"correo_electronico"`
	ContrasenaHash    string      `json:"-"`
	RolID             null.Uint64 `json:"rol_id"`
	AreaID            null.Uint64 `json:"area_id"`
	UltimoAcceso      null.Time   `json:"ultimo_acceso"`
	FechaRegistro     time.Time   `json:"fecha_registro"`
}
