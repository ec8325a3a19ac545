package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
	apperrors "inventario-iuca/pkg/errors"
)

const (
	accesoTable  = "acceso"
	accesoFields = "id_acceso, nombre_usuario, correo_electronico, contrasena_hash, rol_id, area_id, ultimo_acceso, fecha_registro"

	accesoViewQuery = `
		SELECT a.id_acceso, a.nombre_usuario, a.correo_electronico, a.area_id, ar.nombre_area,
		       a.rol_id, r.nombre_rol, r.nivel_acceso, a.ultimo_acceso, a.fecha_registro
		FROM acceso a
			LEFT JOIN cat_areas ar ON a.area_id = ar.id_area
			LEFT JOIN cat_roles r ON a.rol_id = r.id_rol`
)

type AccesoRepositoryInterface interface {
	FindAccesoByCorreo(ctx context.Context, correo string) (*entities.Acceso, error)
	FindAccesoByID(ctx context.Context, id uint64) (*entities.Acceso, error)
	GetAccesoView(ctx context.Context, id uint64) (*dto.AccesoDTO, error)
	GetAccesos(ctx context.Context) ([]dto.AccesoDTO, error)
	CreateAcceso(ctx context.Context, payload dto.CreateAccesoDTO, contrasenaHash string) (*dto.AccesoDTO, error)
	ExisteCorreo(ctx context.Context, correo string) (bool, error)
	ActualizarUltimoAcceso(ctx context.Context, id uint64) error
}

type accesoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAccesoRepository(storage *pgxpool.Pool, logger *zap.Logger) AccesoRepositoryInterface {
	return &accesoRepository{storage: storage, logger: logger}
}

func (r *accesoRepository) scanAcceso(row pgx.Row) (*entities.Acceso, error) {
	var a entities.Acceso
	err := row.Scan(&a.ID, &a.NombreUsuario, &a.CorreoElectronico, &a.ContrasenaHash,
		&a.RolID, &a.AreaID, &a.UltimoAcceso, &a.FechaRegistro)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoEncontrado
		}
		return nil, err
	}
	return &a, nil
}

func (r *accesoRepository) FindAccesoByCorreo(ctx context.Context, correo string) (*entities.Acceso, error) {
	query := "SELECT " + accesoFields + " FROM " + accesoTable + " WHERE correo_electronico = $1"
	return r.scanAcceso(r.storage.QueryRow(ctx, query, correo))
}

func (r *accesoRepository) FindAccesoByID(ctx context.Context, id uint64) (*entities.Acceso, error) {
	query := "SELECT " + accesoFields + " FROM " + accesoTable + " WHERE id_acceso = $1"
	return r.scanAcceso(r.storage.QueryRow(ctx, query, id))
}

type dbAccesoView struct {
	ID            uint64
	NombreUsuario string
	Correo        string
	AreaID        null.Uint64
	Area          null.String
	RolID         null.Uint64
	Rol           null.String
	NivelAcceso   null.Int64
	UltimoAcceso  null.Time
	FechaRegistro time.Time
}

func (row *dbAccesoView) ToDTO() dto.AccesoDTO {
	d := dto.AccesoDTO{
		ID:                row.ID,
		NombreUsuario:     row.NombreUsuario,
		CorreoElectronico: row.Correo,
		AreaID:            row.AreaID.Ptr(),
		Area:              row.Area.Ptr(),
		RolID:             row.RolID.Ptr(),
		Rol:               row.Rol.Ptr(),
		NivelAcceso:       row.NivelAcceso.Ptr(),
		FechaRegistro:     row.FechaRegistro.Format("2006-01-02"),
	}
	if row.UltimoAcceso.Valid {
		d.UltimoAcceso = row.UltimoAcceso.Time.Format("2006-01-02 15:04:05")
	}
	return d
}

func (r *accesoRepository) GetAccesoView(ctx context.Context, id uint64) (*dto.AccesoDTO, error) {
	var row dbAccesoView
	err := r.storage.QueryRow(ctx, accesoViewQuery+" WHERE a.id_acceso = $1", id).Scan(
		&row.ID, &row.NombreUsuario, &row.Correo, &row.AreaID, &row.Area,
		&row.RolID, &row.Rol, &row.NivelAcceso, &row.UltimoAcceso, &row.FechaRegistro)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoEncontrado
		}
		return nil, err
	}
	view := row.ToDTO()
	return &view, nil
}

func (r *accesoRepository) GetAccesos(ctx context.Context) ([]dto.AccesoDTO, error) {
	rows, err := r.storage.Query(ctx, accesoViewQuery+" ORDER BY a.id_acceso")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accesos := make([]dto.AccesoDTO, 0)
	for rows.Next() {
		var row dbAccesoView
		if err := rows.Scan(&row.ID, &row.NombreUsuario, &row.Correo, &row.AreaID, &row.Area,
			&row.RolID, &row.Rol, &row.NivelAcceso, &row.UltimoAcceso, &row.FechaRegistro); err != nil {
			return nil, err
		}
		accesos = append(accesos, row.ToDTO())
	}
	return accesos, rows.Err()
}

func (r *accesoRepository) ExisteCorreo(ctx context.Context, correo string) (bool, error) {
	var existe bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM acceso WHERE correo_electronico = $1)", correo).Scan(&existe)
	return existe, err
}

func (r *accesoRepository) CreateAcceso(ctx context.Context, payload dto.CreateAccesoDTO, contrasenaHash string) (*dto.AccesoDTO, error) {
	var newID uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO acceso (nombre_usuario, correo_electronico, contrasena_hash, rol_id, area_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_acceso`,
		payload.NombreUsuario, payload.CorreoElectronico, contrasenaHash, payload.RolID, payload.AreaID,
	).Scan(&newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflicto
		}
		return nil, err
	}
	return r.GetAccesoView(ctx, newID)
}

func (r *accesoRepository) ActualizarUltimoAcceso(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE acceso SET ultimo_acceso = NOW() WHERE id_acceso = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNoEncontrado
	}
	return nil
}
