package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
	"inventario-iuca/internal/infrastructure/bd"
	apperrors "inventario-iuca/pkg/errors"
)

var mobiliarioViewColumns = []string{
	"m.id_mueble", "m.tipo_mobiliario_id", "t.nombre_tipo",
	"m.marca", "m.modelo", "m.color", "m.caracteristicas", "m.observaciones",
	"m.estado_id", "s.nombre_estado", "s.color_hex",
	"m.usuario_asignado_id", "u.nombre_usuario",
	"m.fecha_asignacion", "m.sucursal_nombre", "m.fecha_creacion", "m.fecha_modificacion",
}

func mobiliarioViewBuilder() sq.SelectBuilder {
	return bd.Psql.Select(mobiliarioViewColumns...).
		From("mobiliario m").
		LeftJoin("cat_tipos_mobiliario t ON m.tipo_mobiliario_id = t.id_tipo_mobiliario").
		LeftJoin("cat_estados s ON m.estado_id = s.id_estado").
		LeftJoin("usuario u ON m.usuario_asignado_id = u.id_usuario")
}

type MobiliarioRepositoryInterface interface {
	GetMobiliario(ctx context.Context, filter dto.MobiliarioFilter) ([]dto.MobiliarioDTO, uint64, error)
	FindMueble(ctx context.Context, id uint64) (*dto.MobiliarioDTO, error)
	CreateMueble(ctx context.Context, payload dto.CreateMobiliarioDTO, creadoPor uint64, sucursal string) (uint64, error)
	UpdateMueble(ctx context.Context, id uint64, payload dto.UpdateMobiliarioDTO, modificadoPor uint64) error
	DeleteMueble(ctx context.Context, id uint64) error
}

type mobiliarioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMobiliarioRepository(storage *pgxpool.Pool, logger *zap.Logger) MobiliarioRepositoryInterface {
	return &mobiliarioRepository{storage: storage, logger: logger}
}

type dbMobiliarioView struct {
	mueble      entities.Mobiliario
	tipo        null.String
	estado      null.String
	colorEstado null.String
	responsable null.String
}

func (v *dbMobiliarioView) ToDTO() *dto.MobiliarioDTO {
	m := v.mueble
	d := dto.MobiliarioDTO{
		ID:                m.ID,
		TipoMobiliarioID:  m.TipoMobiliarioID,
		EstadoID:          m.EstadoID,
		SucursalNombre:    m.SucursalNombre,
		TipoMobiliario:    v.tipo.Ptr(),
		Estado:            v.estado.Ptr(),
		ColorEstado:       v.colorEstado.Ptr(),
		Responsable:       v.responsable.Ptr(),
		Marca:             m.Marca.Ptr(),
		Modelo:            m.Modelo.Ptr(),
		Color:             m.Color.Ptr(),
		Caracteristicas:   m.Caracteristicas.Ptr(),
		Observaciones:     m.Observaciones.Ptr(),
		UsuarioAsignadoID: m.UsuarioAsignadoID.Ptr(),
		FechaCreacion:     m.FechaCreacion.Format("2006-01-02 15:04:05"),
		FechaModificacion: m.FechaModificacion.Format("2006-01-02 15:04:05"),
	}
	if m.FechaAsignacion.Valid {
		d.FechaAsignacion = m.FechaAsignacion.Time.Format("2006-01-02")
	}
	return &d
}

func scanMobiliarioView(row pgx.Row) (*dto.MobiliarioDTO, error) {
	var v dbMobiliarioView
	m := &v.mueble
	err := row.Scan(&m.ID, &m.TipoMobiliarioID, &v.tipo,
		&m.Marca, &m.Modelo, &m.Color, &m.Caracteristicas, &m.Observaciones,
		&m.EstadoID, &v.estado, &v.colorEstado,
		&m.UsuarioAsignadoID, &v.responsable,
		&m.FechaAsignacion, &m.SucursalNombre, &m.FechaCreacion, &m.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoEncontrado
		}
		return nil, err
	}
	return v.ToDTO(), nil
}

func mobiliarioListParams(filter dto.MobiliarioFilter) bd.ListParams {
	eq := map[string]interface{}{}
	if filter.TipoMobiliarioID != nil {
		eq["m.tipo_mobiliario_id"] = *filter.TipoMobiliarioID
	}
	if filter.EstadoID != nil {
		eq["m.estado_id"] = *filter.EstadoID
	}
	if filter.UsuarioAsignadoID != nil {
		eq["m.usuario_asignado_id"] = *filter.UsuarioAsignadoID
	}
	return bd.ListParams{
		Eq:            eq,
		Search:        filter.Search,
		SearchColumns: []string{"m.marca", "m.modelo"},
		OrderBy:       "m.id_mueble DESC",
		Limit:         filter.Limit,
		Offset:        filter.Offset,
	}
}

func (r *mobiliarioRepository) GetMobiliario(ctx context.Context, filter dto.MobiliarioFilter) ([]dto.MobiliarioDTO, uint64, error) {
	params := mobiliarioListParams(filter)

	query, args, err := bd.ApplyListParams(mobiliarioViewBuilder(), params).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	muebles := make([]dto.MobiliarioDTO, 0)
	for rows.Next() {
		m, err := scanMobiliarioView(rows)
		if err != nil {
			return nil, 0, err
		}
		muebles = append(muebles, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := bd.ApplyFilters(bd.Psql.Select("COUNT(*)").From("mobiliario m"), params)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return muebles, total, nil
}

func (r *mobiliarioRepository) FindMueble(ctx context.Context, id uint64) (*dto.MobiliarioDTO, error) {
	query, args, err := mobiliarioViewBuilder().Where(sq.Eq{"m.id_mueble": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMobiliarioView(r.storage.QueryRow(ctx, query, args...))
}

func (r *mobiliarioRepository) CreateMueble(ctx context.Context, payload dto.CreateMobiliarioDTO, creadoPor uint64, sucursal string) (uint64, error) {
	if payload.SucursalNombre != nil && *payload.SucursalNombre != "" {
		sucursal = *payload.SucursalNombre
	}
	var newID uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO mobiliario
			(tipo_mobiliario_id, marca, modelo, color, caracteristicas, observaciones,
			 estado_id, usuario_asignado_id, fecha_asignacion, sucursal_nombre, creado_por, modificado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id_mueble`,
		payload.TipoMobiliarioID, payload.Marca, payload.Modelo, payload.Color,
		payload.Caracteristicas, payload.Observaciones, payload.EstadoID,
		payload.UsuarioAsignadoID, payload.FechaAsignacion, sucursal, creadoPor,
	).Scan(&newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrConflicto
		}
		return 0, err
	}
	return newID, nil
}

func (r *mobiliarioRepository) UpdateMueble(ctx context.Context, id uint64, payload dto.UpdateMobiliarioDTO, modificadoPor uint64) error {
	builder := bd.Psql.Update("mobiliario").
		Set("modificado_por", modificadoPor).
		Set("fecha_modificacion", sq.Expr("NOW()"))

	if payload.TipoMobiliarioID != nil {
		builder = builder.Set("tipo_mobiliario_id", *payload.TipoMobiliarioID)
	}
	if payload.EstadoID != nil {
		builder = builder.Set("estado_id", *payload.EstadoID)
	}
	if payload.Marca != nil {
		builder = builder.Set("marca", *payload.Marca)
	}
	if payload.Modelo != nil {
		builder = builder.Set("modelo", *payload.Modelo)
	}
	if payload.Color != nil {
		builder = builder.Set("color", *payload.Color)
	}
	if payload.Caracteristicas != nil {
		builder = builder.Set("caracteristicas", *payload.Caracteristicas)
	}
	if payload.Observaciones != nil {
		builder = builder.Set("observaciones", *payload.Observaciones)
	}
	if payload.UsuarioAsignadoID != nil {
		builder = builder.Set("usuario_asignado_id", *payload.UsuarioAsignadoID)
	}
	if payload.FechaAsignacion != nil {
		builder = builder.Set("fecha_asignacion", *payload.FechaAsignacion)
	}

	query, args, err := builder.Where(sq.Eq{"id_mueble": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNoEncontrado
	}
	return nil
}

func (r *mobiliarioRepository) DeleteMueble(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM mobiliario WHERE id_mueble = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNoEncontrado
	}
	return nil
}
