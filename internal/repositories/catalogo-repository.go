package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/internal/entities"
)

type CatalogoRepositoryInterface interface {
	GetAreas(ctx context.Context) ([]entities.CatArea, error)
	GetTiposActivo(ctx context.Context) ([]entities.CatTipoActivo, error)
	GetEstados(ctx context.Context) ([]entities.CatEstado, error)
	GetTiposMobiliario(ctx context.Context) ([]entities.CatTipoMobiliario, error)
	GetRoles(ctx context.Context) ([]entities.CatRol, error)
}

type catalogoRepository struct {
	storage *pgxpool.Pool
}

func NewCatalogoRepository(storage *pgxpool.Pool) CatalogoRepositoryInterface {
	return &catalogoRepository{storage: storage}
}

func (r *catalogoRepository) GetAreas(ctx context.Context) ([]entities.CatArea, error) {
	rows, err := r.storage.Query(ctx, "SELECT id_area, nombre_area, descripcion FROM cat_areas ORDER BY id_area")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]entities.CatArea, 0)
	for rows.Next() {
		var a entities.CatArea
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Descripcion); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (r *catalogoRepository) GetTiposActivo(ctx context.Context) ([]entities.CatTipoActivo, error) {
	rows, err := r.storage.Query(ctx, "SELECT id_tipo_activo, nombre_tipo, descripcion FROM cat_tipos_activo ORDER BY id_tipo_activo")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := make([]entities.CatTipoActivo, 0)
	for rows.Next() {
		var t entities.CatTipoActivo
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

func (r *catalogoRepository) GetEstados(ctx context.Context) ([]entities.CatEstado, error) {
	rows, err := r.storage.Query(ctx, "SELECT id_estado, nombre_estado, descripcion, color_hex FROM cat_estados ORDER BY id_estado")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estados := make([]entities.CatEstado, 0)
	for rows.Next() {
		var e entities.CatEstado
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Descripcion, &e.ColorHex); err != nil {
			return nil, err
		}
		estados = append(estados, e)
	}
	return estados, rows.Err()
}

func (r *catalogoRepository) GetTiposMobiliario(ctx context.Context) ([]entities.CatTipoMobiliario, error) {
	rows, err := r.storage.Query(ctx, "SELECT id_tipo_mobiliario, nombre_tipo, descripcion FROM cat_tipos_mobiliario ORDER BY id_tipo_mobiliario")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := make([]entities.CatTipoMobiliario, 0)
	for rows.Next() {
		var t entities.CatTipoMobiliario
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

func (r *catalogoRepository) GetRoles(ctx context.Context) ([]entities.CatRol, error) {
	rows, err := r.storage.Query(ctx, "SELECT id_rol, nombre_rol, descripcion, nivel_acceso FROM cat_roles ORDER BY id_rol")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entities.CatRol, 0)
	for rows.Next() {
		var rol entities.CatRol
		if err := rows.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.NivelAcceso); err != nil {
			return nil, err
		}
		roles = append(roles, rol)
	}
	return roles, rows.Err()
}
