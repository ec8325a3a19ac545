package dto

type CreateEspecificacionDTO struct {
	Nombre string `json:"nombre_especificacion" validate:"required,max=100"`
	Valor  string `json:"valor_especificacion" validate:"required,max=100"`
}

type CreateEquipoDTO struct {
	NombreActivo      string                    `json:"nombre_activo" validate:"required,max=50"`
	TipoActivoID      uint64                    `json:"tipo_activo_id" validate:"required"`
	EstadoID          uint64                    `json:"estado_id" validate:"required"`
	Marca             *string                   `json:"marca" validate:"omitempty,max=50"`
	Modelo            *string                   `json:"modelo" validate:"omitempty,max=50"`
	NumeroSerie       *string                   `json:"numero_serie" validate:"omitempty,max=50"`
	Observaciones     *string                   `json:"observaciones"`
	UsuarioAsignadoID *uint64                   `json:"usuario_asignado_id"`
	SucursalNombre    *string                   `json:"sucursal_nombre" validate:"omitempty,max=50"`
	Especificaciones  []CreateEspecificacionDTO `json:"especificaciones" validate:"omitempty,dive"`
}

// UpdateEquipoDTO: campos no enviados quedan intactos. Si Especificaciones no
// es nil, la lista completa se reemplaza (borrar y reinsertar renumerando).
type UpdateEquipoDTO struct {
	NombreActivo      *string                    `json:"nombre_activo" validate:"omitempty,min=1,max=50"`
	TipoActivoID      *uint64                    `json:"tipo_activo_id"`
	EstadoID          *uint64                    `json:"estado_id"`
	Marca             *string                    `json:"marca" validate:"omitempty,max=50"`
	Modelo            *string                    `json:"modelo" validate:"omitempty,max=50"`
	NumeroSerie       *string                    `json:"numero_serie" validate:"omitempty,max=50"`
	Observaciones     *string                    `json:"observaciones"`
	UsuarioAsignadoID *uint64                    `json:"usuario_asignado_id"`
	Especificaciones  *[]CreateEspecificacionDTO `json:"especificaciones" validate:"omitempty,dive"`
}

type EspecificacionDTO struct {
	ID       uint64 `json:"id_especificacion"`
	EquipoID uint64 `json:"equipo_id"`
	Nombre   string `json:"nombre_especificacion"`
	Valor    string `json:"valor_especificacion"`
	Orden    int    `json:"orden"`
}

// EquipoDTO es la vista desnormalizada que sale por el API: incluye los
// nombres de catálogo resueltos con JOIN, no solo los IDs.
type EquipoDTO struct {
	ID                uint64              `json:"id_activo"`
	TipoActivoID      uint64              `json:"tipo_activo_id"`
	TipoActivo        *string             `json:"tipo_activo"`
	NombreActivo      string              `json:"nombre_activo"`
	Marca             *string             `json:"marca"`
	Modelo            *string             `json:"modelo"`
	NumeroSerie       *string             `json:"numero_serie"`
	EstadoID          uint64              `json:"estado_id"`
	Estado            *string             `json:"estado"`
	ColorEstado       *string             `json:"color_estado"`
	FechaRegistro     string              `json:"fecha_registro"`
	Observaciones     *string             `json:"observaciones"`
	UsuarioAsignadoID *uint64             `json:"usuario_asignado_id"`
	Responsable       *string             `json:"responsable"`
	SucursalNombre    string              `json:"sucursal_nombre"`
	FechaCreacion     string              `json:"fecha_creacion"`
	FechaModificacion string              `json:"fecha_modificacion"`
	Especificaciones  []EspecificacionDTO `json:"especificaciones,omitempty"`
}

type ListEquiposResponseDTO struct {
	Equipos     []EquipoDTO `json:"equipos"`
	Total       uint64      `json:"total"`
	Pages       uint64      `json:"pages"`
	CurrentPage uint64      `json:"current_page"`
}

// EquipoFilter es la conjunción de predicados opcionales del listado.
type EquipoFilter struct {
	TipoActivoID      *uint64
	EstadoID          *uint64
	UsuarioAsignadoID *uint64
	Search            string
	Limit             uint64
	Offset            uint64
}
