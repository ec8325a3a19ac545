package repositories

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
	apperrors "inventario-iuca/pkg/errors"
)

const usuarioViewQuery = `
	SELECT u.id_usuario, u.numero_nomina, u.nombre_usuario, u.puesto, u.area_id, a.nombre_area
	FROM usuario u
		LEFT JOIN cat_areas a ON u.area_id = a.id_area`

type UsuarioRepositoryInterface interface {
	GetUsuarios(ctx context.Context) ([]dto.UsuarioDTO, error)
	FindUsuario(ctx context.Context, id uint64) (*dto.UsuarioDTO, error)
	CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error)
	ExisteNumeroNomina(ctx context.Context, numeroNomina string) (bool, error)
}

type usuarioRepository struct {
	storage *pgxpool.Pool
}

func NewUsuarioRepository(storage *pgxpool.Pool) UsuarioRepositoryInterface {
	return &usuarioRepository{storage: storage}
}

type dbUsuarioView struct {
	usuario entities.Usuario
	area    null.String
}

func (v *dbUsuarioView) ToDTO() *dto.UsuarioDTO {
	u := v.usuario
	return &dto.UsuarioDTO{
		ID:           u.ID,
		Nombre:       u.Nombre,
		NumeroNomina: u.NumeroNomina.Ptr(),
		Puesto:       u.Puesto.Ptr(),
		AreaID:       u.AreaID.Ptr(),
		Area:         v.area.Ptr(),
	}
}

func scanUsuarioView(row pgx.Row) (*dto.UsuarioDTO, error) {
	var v dbUsuarioView
	u := &v.usuario
	if err := row.Scan(&u.ID, &u.NumeroNomina, &u.Nombre, &u.Puesto, &u.AreaID, &v.area); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoEncontrado
		}
		return nil, err
	}
	return v.ToDTO(), nil
}

func (r *usuarioRepository) GetUsuarios(ctx context.Context) ([]dto.UsuarioDTO, error) {
	rows, err := r.storage.Query(ctx, usuarioViewQuery+" ORDER BY u.nombre_usuario")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := make([]dto.UsuarioDTO, 0)
	for rows.Next() {
		u, err := scanUsuarioView(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, *u)
	}
	return usuarios, rows.Err()
}

func (r *usuarioRepository) FindUsuario(ctx context.Context, id uint64) (*dto.UsuarioDTO, error) {
	return scanUsuarioView(r.storage.QueryRow(ctx, usuarioViewQuery+" WHERE u.id_usuario = $1", id))
}

func (r *usuarioRepository) CreateUsuario(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error) {
	var newID uint64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO usuario (numero_nomina, nombre_usuario, puesto, area_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id_usuario`,
		payload.NumeroNomina, payload.NombreUsuario, payload.Puesto, payload.AreaID,
	).Scan(&newID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflicto
		}
		return nil, err
	}
	return r.FindUsuario(ctx, newID)
}

func (r *usuarioRepository) ExisteNumeroNomina(ctx context.Context, numeroNomina string) (bool, error) {
	var existe bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM usuario WHERE numero_nomina = $1)", numeroNomina).Scan(&existe)
	return existe, err
}
