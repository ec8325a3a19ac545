package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/internal/authz"
	"inventario-iuca/internal/dto"
	"inventario-iuca/internal/entities"
)

type PermisoRepositoryInterface interface {
	GetPermisosPorRol(ctx context.Context, rolID uint64) ([]dto.PermisoDTO, error)
	GetPermissionMap(ctx context.Context, rolID uint64) (authz.PermissionMap, error)
}

type permisoRepository struct {
	storage *pgxpool.Pool
}

func NewPermisoRepository(storage *pgxpool.Pool) PermisoRepositoryInterface {
	return &permisoRepository{storage: storage}
}

func permisoToDTO(p *entities.Permiso) dto.PermisoDTO {
	return dto.PermisoDTO{
		ID:              p.ID,
		RolID:           p.RolID,
		Modulo:          p.Modulo,
		PuedeCrear:      p.Flags.Crear,
		PuedeLeer:       p.Flags.Leer,
		PuedeActualizar: p.Flags.Actualizar,
		PuedeEliminar:   p.Flags.Eliminar,
		PuedeExportar:   p.Flags.Exportar,
	}
}

func (r *permisoRepository) getPermisos(ctx context.Context, rolID uint64) ([]entities.Permiso, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id_permiso, rol_id, modulo, puede_crear, puede_leer, puede_actualizar, puede_eliminar, puede_exportar
		FROM permisos
		WHERE rol_id = $1
		ORDER BY modulo`, rolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permisos := make([]entities.Permiso, 0)
	for rows.Next() {
		var p entities.Permiso
		if err := rows.Scan(&p.ID, &p.RolID, &p.Modulo, &p.Flags.Crear, &p.Flags.Leer,
			&p.Flags.Actualizar, &p.Flags.Eliminar, &p.Flags.Exportar); err != nil {
			return nil, err
		}
		permisos = append(permisos, p)
	}
	return permisos, rows.Err()
}

func (r *permisoRepository) GetPermisosPorRol(ctx context.Context, rolID uint64) ([]dto.PermisoDTO, error) {
	permisos, err := r.getPermisos(ctx, rolID)
	if err != nil {
		return nil, err
	}
	lista := make([]dto.PermisoDTO, 0, len(permisos))
	for i := range permisos {
		lista = append(lista, permisoToDTO(&permisos[i]))
	}
	return lista, nil
}

func (r *permisoRepository) GetPermissionMap(ctx context.Context, rolID uint64) (authz.PermissionMap, error) {
	permisos, err := r.getPermisos(ctx, rolID)
	if err != nil {
		return nil, err
	}
	m := make(authz.PermissionMap, len(permisos))
	for _, p := range permisos {
		m[p.Modulo] = p.Flags
	}
	return m, nil
}
