package dto

type CreateAccesoDTO struct {
	NombreUsuario     string  `json:"nombre_usuario" validate:"required"`
	CorreoElectronico string  `json:"correo_electronico" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=8"`
	RolID             uint64  `json:"rol_id" validate:"required"`
	AreaID            *uint64 `json:"area_id" validate:"omitempty"`
}

type AccesoDTO struct {
	ID                uint64  `json:"id_acceso"`
	NombreUsuario     string  `json:"nombre_usuario"`
	CorreoElectronico string  `json:"correo_electronico"`
	AreaID            *uint64 `json:"area_id"`
	Area              *string `json:"area"`
	RolID             *uint64 `json:"rol_id"`
	Rol               *string `json:"rol"`
	NivelAcceso       *int64  `json:"nivel_acceso"`
	UltimoAcceso      string  `json:"ultimo_acceso,omitempty"`
	FechaRegistro     string  `json:"fecha_registro"`
}
