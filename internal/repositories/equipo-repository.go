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

var equipoViewColumns = []string{
	"e.id_activo", "e.tipo_activo_id", "t.nombre_tipo", "e.nombre_activo",
	"e.marca", "e.modelo", "e.numero_serie",
	"e.estado_id", "s.nombre_estado", "s.color_hex",
	"e.fecha_registro", "e.observaciones",
	"e.usuario_asignado_id", "u.nombre_usuario",
	"e.sucursal_nombre", "e.fecha_creacion", "e.fecha_modificacion",
}

func equipoViewBuilder() sq.SelectBuilder {
	return bd.Psql.Select(equipoViewColumns...).
		From("equipos_computo e").
		LeftJoin("cat_tipos_activo t ON e.tipo_activo_id = t.id_tipo_activo").
		LeftJoin("cat_estados s ON e.estado_id = s.id_estado").
		LeftJoin("usuario u ON e.usuario_asignado_id = u.id_usuario")
}

type EquipoRepositoryInterface interface {
	GetEquipos(ctx context.Context, filter dto.EquipoFilter) ([]dto.EquipoDTO, uint64, error)
	FindEquipo(ctx context.Context, id uint64) (*dto.EquipoDTO, error)
	GetEspecificaciones(ctx context.Context, equipoID uint64) ([]dto.EspecificacionDTO, error)
	ExisteNumeroSerie(ctx context.Context, numeroSerie string, excludeID uint64) (bool, error)
	CreateEquipo(ctx context.Context, tx pgx.Tx, payload dto.CreateEquipoDTO, creadoPor uint64, sucursal string) (uint64, error)
	InsertEspecificaciones(ctx context.Context, tx pgx.Tx, equipoID uint64, especificaciones []dto.CreateEspecificacionDTO) error
	ReplaceEspecificaciones(ctx context.Context, tx pgx.Tx, equipoID uint64, especificaciones []dto.CreateEspecificacionDTO) error
	UpdateEquipo(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateEquipoDTO, modificadoPor uint64) error
	DeleteEquipo(ctx context.Context, id uint64) error
}

type equipoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipoRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipoRepositoryInterface {
	return &equipoRepository{storage: storage, logger: logger}
}

// dbEquipoView es la fila del equipo más las columnas de los catálogos
// unidos; ToDTO aplana todo a la forma de salida.
type dbEquipoView struct {
	equipo      entities.Equipo
	tipo        null.String
	estado      null.String
	colorEstado null.String
	responsable null.String
}

func (v *dbEquipoView) ToDTO() *dto.EquipoDTO {
	e := v.equipo
	d := dto.EquipoDTO{
		ID:                e.ID,
		TipoActivoID:      e.TipoActivoID,
		NombreActivo:      e.NombreActivo,
		EstadoID:          e.EstadoID,
		SucursalNombre:    e.SucursalNombre,
		TipoActivo:        v.tipo.Ptr(),
		Estado:            v.estado.Ptr(),
		ColorEstado:       v.colorEstado.Ptr(),
		Responsable:       v.responsable.Ptr(),
		Marca:             e.Marca.Ptr(),
		Modelo:            e.Modelo.Ptr(),
		NumeroSerie:       e.NumeroSerie.Ptr(),
		Observaciones:     e.Observaciones.Ptr(),
		UsuarioAsignadoID: e.UsuarioAsignadoID.Ptr(),
		FechaRegistro:     e.FechaRegistro.Format("2006-01-02"),
		FechaCreacion:     e.FechaCreacion.Format("2006-01-02 15:04:05"),
		FechaModificacion: e.FechaModificacion.Format("2006-01-02 15:04:05"),
	}
	return &d
}

func scanEquipoView(row pgx.Row) (*dto.EquipoDTO, error) {
	var v dbEquipoView
	e := &v.equipo
	err := row.Scan(&e.ID, &e.TipoActivoID, &v.tipo, &e.NombreActivo,
		&e.Marca, &e.Modelo, &e.NumeroSerie,
		&e.EstadoID, &v.estado, &v.colorEstado,
		&e.FechaRegistro, &e.Observaciones,
		&e.UsuarioAsignadoID, &v.responsable,
		&e.SucursalNombre, &e.FechaCreacion, &e.FechaModificacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoEncontrado
		}
		return nil, err
	}
	return v.ToDTO(), nil
}

func equipoListParams(filter dto.EquipoFilter) bd.ListParams {
	eq := map[string]interface{}{}
	if filter.TipoActivoID != nil {
		eq["e.tipo_activo_id"] = *filter.TipoActivoID
	}
	if filter.EstadoID != nil {
		eq["e.estado_id"] = *filter.EstadoID
	}
	if filter.UsuarioAsignadoID != nil {
		eq["e.usuario_asignado_id"] = *filter.UsuarioAsignadoID
	}
	return bd.ListParams{
		Eq:            eq,
		Search:        filter.Search,
		SearchColumns: []string{"e.nombre_activo", "e.marca", "e.numero_serie"},
		OrderBy:       "e.id_activo DESC",
		Limit:         filter.Limit,
		Offset:        filter.Offset,
	}
}

func (r *equipoRepository) GetEquipos(ctx context.Context, filter dto.EquipoFilter) ([]dto.EquipoDTO, uint64, error) {
	params := equipoListParams(filter)

	query, args, err := bd.ApplyListParams(equipoViewBuilder(), params).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipos := make([]dto.EquipoDTO, 0)
	for rows.Next() {
		e, err := scanEquipoView(rows)
		if err != nil {
			return nil, 0, err
		}
		equipos = append(equipos, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := bd.ApplyFilters(bd.Psql.Select("COUNT(*)").From("equipos_computo e"), params)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return equipos, total, nil
}

func (r *equipoRepository) FindEquipo(ctx context.Context, id uint64) (*dto.EquipoDTO, error) {
	query, args, err := equipoViewBuilder().Where(sq.Eq{"e.id_activo": id}).ToSql()
	if err != nil {
		return nil, err
	}
	equipo, err := scanEquipoView(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	specs, err := r.GetEspecificaciones(ctx, id)
	if err != nil {
		return nil, err
	}
	equipo.Especificaciones = specs
	return equipo, nil
}

func (r *equipoRepository) GetEspecificaciones(ctx context.Context, equipoID uint64) ([]dto.EspecificacionDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id_especificacion, equipo_id, nombre_especificacion, valor_especificacion, orden
		FROM especificaciones_equipo
		WHERE equipo_id = $1
		ORDER BY orden`, equipoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	especificaciones := make([]dto.EspecificacionDTO, 0)
	for rows.Next() {
		var e entities.Especificacion
		if err := rows.Scan(&e.ID, &e.EquipoID, &e.Nombre, &e.Valor, &e.Orden); err != nil {
			return nil, err
		}
		especificaciones = append(especificaciones, dto.EspecificacionDTO{
			ID:       e.ID,
			EquipoID: e.EquipoID,
			Nombre:   e.Nombre,
			Valor:    e.Valor,
			Orden:    e.Orden,
		})
	}
	return especificaciones, rows.Err()
}

// ExisteNumeroSerie ignora la fila excludeID para que un update pueda
// conservar su propio número de serie.
func (r *equipoRepository) ExisteNumeroSerie(ctx context.Context, numeroSerie string, excludeID uint64) (bool, error) {
	var existe bool
	err := r.storage.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM equipos_computo
			WHERE numero_serie = $1 AND id_activo <> $2
		)`, numeroSerie, excludeID).Scan(&existe)
	return existe, err
}

func (r *equipoRepository) CreateEquipo(ctx context.Context, tx pgx.Tx, payload dto.CreateEquipoDTO, creadoPor uint64, sucursal string) (uint64, error) {
	if payload.SucursalNombre != nil && *payload.SucursalNombre != "" {
		sucursal = *payload.SucursalNombre
	}
	var newID uint64
	err := tx.QueryRow(ctx, `
		INSERT INTO equipos_computo
			(tipo_activo_id, nombre_activo, marca, modelo, numero_serie, estado_id,
			 observaciones, usuario_asignado_id, sucursal_nombre, creado_por, modificado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id_activo`,
		payload.TipoActivoID, payload.NombreActivo, payload.Marca, payload.Modelo,
		payload.NumeroSerie, payload.EstadoID, payload.Observaciones,
		payload.UsuarioAsignadoID, sucursal, creadoPor,
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

// InsertEspecificaciones numera las filas 1..N según su posición en la lista.
func (r *equipoRepository) InsertEspecificaciones(ctx context.Context, tx pgx.Tx, equipoID uint64, especificaciones []dto.CreateEspecificacionDTO) error {
	for i, esp := range especificaciones {
		_, err := tx.Exec(ctx, `
			INSERT INTO especificaciones_equipo (equipo_id, nombre_especificacion, valor_especificacion, orden)
			VALUES ($1, $2, $3, $4)`,
			equipoID, esp.Nombre, esp.Valor, i+1)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *equipoRepository) ReplaceEspecificaciones(ctx context.Context, tx pgx.Tx, equipoID uint64, especificaciones []dto.CreateEspecificacionDTO) error {
	if _, err := tx.Exec(ctx, "DELETE FROM especificaciones_equipo WHERE equipo_id = $1", equipoID); err != nil {
		return err
	}
	return r.InsertEspecificaciones(ctx, tx, equipoID, especificaciones)
}

func (r *equipoRepository) UpdateEquipo(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateEquipoDTO, modificadoPor uint64) error {
	builder := bd.Psql.Update("equipos_computo").
		Set("modificado_por", modificadoPor).
		Set("fecha_modificacion", sq.Expr("NOW()"))

	if payload.NombreActivo != nil {
		builder = builder.Set("nombre_activo", *payload.NombreActivo)
	}
	if payload.TipoActivoID != nil {
		builder = builder.Set("tipo_activo_id", *payload.TipoActivoID)
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
	if payload.NumeroSerie != nil {
		builder = builder.Set("numero_serie", *payload.NumeroSerie)
	}
	if payload.Observaciones != nil {
		builder = builder.Set("observaciones", *payload.Observaciones)
	}
	if payload.UsuarioAsignadoID != nil {
		builder = builder.Set("usuario_asignado_id", *payload.UsuarioAsignadoID)
	}

	query, args, err := builder.Where(sq.Eq{"id_activo": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflicto
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNoEncontrado
	}
	return nil
}

// DeleteEquipo borra el equipo; las especificaciones caen por el ON DELETE
// CASCADE de la tabla hija.
func (r *equipoRepository) DeleteEquipo(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipos_computo WHERE id_activo = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNoEncontrado
	}
	return nil
}
