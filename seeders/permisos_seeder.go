package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/internal/authz"
)

type permisoSeed struct {
	Modulo     string
	Crear      bool
	Leer       bool
	Actualizar bool
	Eliminar   bool
	Exportar   bool
}

func todosLosPermisos(modulo string) permisoSeed {
	return permisoSeed{Modulo: modulo, Crear: true, Leer: true, Actualizar: true, Eliminar: true, Exportar: true}
}

func soloLectura(modulo string) permisoSeed {
	return permisoSeed{Modulo: modulo, Leer: true}
}

// permisosPorRol define la matriz inicial rol × módulo. El capturista puede
// crear y editar activos pero no eliminarlos ni administrar cuentas.
var permisosPorRol = map[string][]permisoSeed{
	"Administrador": {
		todosLosPermisos(authz.ModuloComputo),
		todosLosPermisos(authz.ModuloMobiliario),
		todosLosPermisos(authz.ModuloUsuarios),
		todosLosPermisos(authz.ModuloHistorial),
	},
	"Capturista": {
		{Modulo: authz.ModuloComputo, Crear: true, Leer: true, Actualizar: true, Exportar: true},
		{Modulo: authz.ModuloMobiliario, Crear: true, Leer: true, Actualizar: true},
		{Modulo: authz.ModuloHistorial, Crear: true, Leer: true},
	},
	"Consulta": {
		soloLectura(authz.ModuloComputo),
		soloLectura(authz.ModuloMobiliario),
		soloLectura(authz.ModuloHistorial),
	},
}

func seedPermisos(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando tabla 'permisos'...")

	for rol, permisos := range permisosPorRol {
		var rolID uint64
		err := db.QueryRow(ctx, "SELECT id_rol FROM cat_roles WHERE nombre_rol = $1", rol).Scan(&rolID)
		if err != nil {
			return fmt.Errorf("no se encontró el rol '%s': %w", rol, err)
		}

		for _, p := range permisos {
			_, err := db.Exec(ctx, `
				INSERT INTO permisos (rol_id, modulo, puede_crear, puede_leer, puede_actualizar, puede_eliminar, puede_exportar)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (rol_id, modulo) DO NOTHING`,
				rolID, p.Modulo, p.Crear, p.Leer, p.Actualizar, p.Eliminar, p.Exportar)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
