package dto

type CreateMobiliarioDTO struct {
	TipoMobiliarioID  uint64  `json:"tipo_mobiliario_id" validate:"required"`
	EstadoID          uint64  `json:"estado_id" validate:"required"`
	Marca             *string `json:"marca" validate:"omitempty,max=50"`
	Modelo            *string `json:"modelo" validate:"omitempty,max=50"`
	Color             *string `json:"color" validate:"omitempty,max=20"`
	Caracteristicas   *string `json:"caracteristicas"`
	Observaciones     *string `json:"observaciones"`
	UsuarioAsignadoID *uint64 `json:"usuario_asignado_id"`
	FechaAsignacion   *string `json:"fecha_asignacion" validate:"omitempty,datetime=2006-01-02"`
	SucursalNombre    *string `json:"sucursal_nombre" validate:"omitempty,max=50"`
}

type UpdateMobiliarioDTO struct {
	TipoMobiliarioID  *uint64 `json:"tipo_mobiliario_id"`
	EstadoID          *uint64 `json:"estado_id"`
	Marca             *string `json:"marca" validate:"omitempty,max=50"`
	Modelo            *string `json:"modelo" validate:"omitempty,max=50"`
	Color             *string `json:"color" validate:"omitempty,max=20"`
	Caracteristicas   *string `json:"caracteristicas"`
	Observaciones     *string `json:"observaciones"`
	UsuarioAsignadoID *uint64 `json:"usuario_asignado_id"`
	FechaAsignacion   *string `json:"fecha_asignacion" validate:"omitempty,datetime=2006-01-02"`
}

type MobiliarioDTO struct {
	ID                uint64  `json:"id_mueble"`
	TipoMobiliarioID  uint64  `json:"tipo_mobiliario_id"`
	TipoMobiliario    *string `json:"tipo_mobiliario"`
	Marca             *string `json:"marca"`
	Modelo            *string `json:"modelo"`
	Color             *string `json:"color"`
	Caracteristicas   *string `json:"caracteristicas"`
	Observaciones     *string `json:"observaciones"`
	EstadoID          uint64  `json:"estado_id"`
	Estado            *string `json:"estado"`
	ColorEstado       *string `json:"color_estado"`
	UsuarioAsignadoID *uint64 `json:"usuario_asignado_id"`
	Responsable       *string `json:"responsable"`
	FechaAsignacion   string  `json:"fecha_asignacion,omitempty"`
	SucursalNombre    string  `json:"sucursal_nombre"`
	FechaCreacion     string  `json:"fecha_creacion"`
	FechaModificacion string  `json:"fecha_modificacion"`
}

type ListMobiliarioResponseDTO struct {
	Mobiliario  []MobiliarioDTO `json:"mobiliario"`
	Total       uint64          `json:"total"`
	Pages       uint64          `json:"pages"`
	CurrentPage uint64          `json:"current_page"`
}

type MobiliarioFilter struct {
	TipoMobiliarioID  *uint64
	EstadoID          *uint64
	UsuarioAsignadoID *uint64
	Search            string
	Limit             uint64
	Offset            uint64
}
