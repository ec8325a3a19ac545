package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
	"inventario-iuca/internal/infrastructure/bd"
)

// El historial es de solo inserción; no hay update ni delete.
type MovimientoRepositoryInterface interface {
	Record(ctx context.Context, tx pgx.Tx, payload dto.CreateMovimientoDTO, realizadoPor uint64) (uint64, error)
	GetMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoDTO, uint64, error)
}

type movimientoRepository struct {
	storage *pgxpool.Pool
}

func NewMovimientoRepository(storage *pgxpool.Pool) MovimientoRepositoryInterface {
	return &movimientoRepository{storage: storage}
}

func movimientoToDTO(m *entities.Movimiento) *dto.MovimientoDTO {
	return &dto.MovimientoDTO{
		ID:                m.ID,
		TipoRegistro:      m.TipoRegistro,
		IDRegistro:        m.IDRegistro,
		TipoMovimiento:    m.TipoMovimiento,
		UsuarioAnteriorID: m.UsuarioAnteriorID.Ptr(),
		UsuarioNuevoID:    m.UsuarioNuevoID.Ptr(),
		EstadoAnteriorID:  m.EstadoAnteriorID.Ptr(),
		EstadoNuevoID:     m.EstadoNuevoID.Ptr(),
		CampoModificado:   m.CampoModificado.Ptr(),
		ValorAnterior:     m.ValorAnterior.Ptr(),
		ValorNuevo:        m.ValorNuevo.Ptr(),
		RealizadoPor:      m.RealizadoPor.Ptr(),
		FechaMovimiento:   m.FechaMovimiento.Format("2006-01-02 15:04:05"),
		Observaciones:     m.Observaciones.Ptr(),
	}
}

// Record acepta una transacción opcional para poder escribir dentro de la
// misma transacción que la operación que registra; con tx nil usa el pool.
func (r *movimientoRepository) Record(ctx context.Context, tx pgx.Tx, payload dto.CreateMovimientoDTO, realizadoPor uint64) (uint64, error) {
	var q querier = r.storage
	if tx != nil {
		q = tx
	}
	var newID uint64
	err := q.QueryRow(ctx, `
		INSERT INTO historial_movimientos
			(tipo_registro, id_registro, tipo_movimiento,
			 usuario_anterior_id, usuario_nuevo_id, estado_anterior_id, estado_nuevo_id,
			 campo_modificado, valor_anterior, valor_nuevo, realizado_por, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id_movimiento`,
		payload.TipoRegistro, payload.IDRegistro, payload.TipoMovimiento,
		payload.UsuarioAnteriorID, payload.UsuarioNuevoID,
		payload.EstadoAnteriorID, payload.EstadoNuevoID,
		payload.CampoModificado, payload.ValorAnterior, payload.ValorNuevo,
		realizadoPor, payload.Observaciones,
	).Scan(&newID)
	return newID, err
}

func (r *movimientoRepository) GetMovimientos(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoDTO, uint64, error) {
	eq := map[string]interface{}{}
	if filter.TipoRegistro != "" {
		eq["tipo_registro"] = filter.TipoRegistro
	}
	if filter.IDRegistro != nil {
		eq["id_registro"] = *filter.IDRegistro
	}
	params := bd.ListParams{
		Eq:      eq,
		OrderBy: "fecha_movimiento DESC, id_movimiento DESC",
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}

	base := bd.Psql.Select(
		"id_movimiento", "tipo_registro", "id_registro", "tipo_movimiento",
		"usuario_anterior_id", "usuario_nuevo_id", "estado_anterior_id", "estado_nuevo_id",
		"campo_modificado", "valor_anterior", "valor_nuevo",
		"realizado_por", "fecha_movimiento", "observaciones",
	).From("historial_movimientos")

	query, args, err := bd.ApplyListParams(base, params).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	movimientos := make([]dto.MovimientoDTO, 0)
	for rows.Next() {
		var m entities.Movimiento
		if err := rows.Scan(&m.ID, &m.TipoRegistro, &m.IDRegistro, &m.TipoMovimiento,
			&m.UsuarioAnteriorID, &m.UsuarioNuevoID, &m.EstadoAnteriorID, &m.EstadoNuevoID,
			&m.CampoModificado, &m.ValorAnterior, &m.ValorNuevo,
			&m.RealizadoPor, &m.FechaMovimiento, &m.Observaciones); err != nil {
			return nil, 0, err
		}
		movimientos = append(movimientos, *movimientoToDTO(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := bd.ApplyFilters(bd.Psql.Select("COUNT(*)").From("historial_movimientos"), params)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return movimientos, total, nil
}
