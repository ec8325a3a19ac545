package dto

type CreateUsuarioDTO struct {
	NumeroNomina  *string `json:"numero_nomina" validate:"omitempty,max=10"`
	NombreUsuario string  `json:"nombre_usuario" validate:"required,max=100"`
	Puesto        *string `json:"puesto" validate:"omitempty,max=80"`
	AreaID        *uint64 `json:"area_id" validate:"omitempty"`
}

type UsuarioDTO struct {
	ID           uint64  `json:"id_usuario"`
	NumeroNomina *string `json:"numero_nomina"`
	Nombre       string  `json:"nombre_usuario"`
	Puesto       *string `json:"puesto"`
	AreaID       *uint64 `json:"area_id"`
	Area         *string `json:"area"`
}
