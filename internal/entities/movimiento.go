package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Movimiento es una entrada del historial; una vez escrita no se actualiza
// ni se elimina.
type Movimiento struct {
	ID                uint64      `json:"id_movimiento"`
	TipoRegistro      string      `json:"tipo_registro"`
	IDRegistro        uint64      `json:"id_registro"`
	TipoMovimiento    string      `json:"tipo_movimiento"`
	UsuarioAnteriorID null.Uint64 `json:"usuario_anterior_id"`
	UsuarioNuevoID    null.Uint64 `json:"usuario_nuevo_id"`
	EstadoAnteriorID  null.Uint64 `json:"estado_anterior_id"`
	EstadoNuevoID     null.Uint64 `json:"estado_nuevo_id"`
	CampoModificado   null.String `json:"campo_modificado"`
	ValorAnterior     null.String `json:"valor_anterior"`
	ValorNuevo        null.String `json:"valor_nuevo"`
	RealizadoPor      null.Uint64 `json:"realizado_por"`
	FechaMovimiento   time.Time   `json:"fecha_movimiento"`
	Observaciones     null.String `json:"observaciones"`
}
