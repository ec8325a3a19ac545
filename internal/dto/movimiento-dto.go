package dto

type CreateMovimientoDTO struct {
	TipoRegistro      string  `json:"tipo_registro" validate:"required,oneof=equipo mobiliario"`
	IDRegistro        uint64  `json:"id_registro" validate:"required"`
	TipoMovimiento    string  `json:"tipo_movimiento" validate:"required,max=50"`
	UsuarioAnteriorID *uint64 `json:"usuario_anterior_id"`
	UsuarioNuevoID    *uint64 `json:"usuario_nuevo_id"`
	EstadoAnteriorID  *uint64 `json:"estado_anterior_id"`
	EstadoNuevoID     *uint64 `json:"estado_nuevo_id"`
	CampoModificado   *string `json:"campo_modificado" validate:"omitempty,max=100"`
	ValorAnterior     *string `json:"valor_anterior"`
	ValorNuevo        *string `json:"valor_nuevo"`
	Observaciones     *string `json:"observaciones"`
}

type MovimientoDTO struct {
	ID                uint64  `json:"id_movimiento"`
	TipoRegistro      string  `json:"tipo_registro"`
	IDRegistro        uint64  `json:"id_registro"`
	TipoMovimiento    string  `json:"tipo_movimiento"`
	UsuarioAnteriorID *uint64 `json:"usuario_anterior_id"`
	UsuarioNuevoID    *uint64 `json:"usuario_nuevo_id"`
	EstadoAnteriorID  *uint64 `json:"estado_anterior_id"`
	EstadoNuevoID     *uint64 `json:"estado_nuevo_id"`
	CampoModificado   *string `json:"campo_modificado"`
	ValorAnterior     *string `json:"valor_anterior"`
	ValorNuevo        *string `json:"valor_nuevo"`
	RealizadoPor      *uint64 `json:"realizado_por"`
	FechaMovimiento   string  `json:"fecha_movimiento"`
	Observaciones     *string `json:"observaciones"`
}

type ListMovimientosResponseDTO struct {
	Movimientos []MovimientoDTO `json:"movimientos"`
	Total       uint64          `json:"total"`
	Pages       uint64          `json:"pages"`
	CurrentPage uint64          `json:"current_page"`
}

type MovimientoFilter struct {
	TipoRegistro string
	IDRegistro   *uint64
	Limit        uint64
	Offset       uint64
}
