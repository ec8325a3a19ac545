package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var rolesData = []struct {
	Nombre      string
	Descripcion string
	NivelAcceso int
}{
	{"Administrador", "Control total del sistema", 1},
	{"Capturista", "Alta y edición de activos", 2},
	{"Consulta", "Solo lectura", 3},
}

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando tabla 'cat_roles'...")
	for _, r := range rolesData {
		_, err := db.Exec(ctx,
			`INSERT INTO cat_roles (nombre_rol, descripcion, nivel_acceso)
			 VALUES ($1, $2, $3) ON CONFLICT (nombre_rol) DO NOTHING`,
			r.Nombre, r.Descripcion, r.NivelAcceso)
		if err != nil {
			return err
		}
	}
	return nil
}
