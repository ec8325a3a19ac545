package seeders

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/pkg/utils"
)

func seedAdmin(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Creando cuenta de administrador inicial...")

	correo := os.Getenv("ADMIN_EMAIL")
	if correo == "" {
		correo = "admin@iuca.edu.mx"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "CambiarEsta1!"
	}

	var existe bool
	if err := db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM acceso WHERE correo_electronico = $1)", correo).Scan(&existe); err != nil {
		return err
	}
	if existe {
		log.Println("    - La cuenta de administrador ya existe, se omite")
		return nil
	}

	var rolID uint64
	if err := db.QueryRow(ctx,
		"SELECT id_rol FROM cat_roles WHERE nombre_rol = 'Administrador'").Scan(&rolID); err != nil {
		return fmt.Errorf("no se encontró el rol 'Administrador': %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO acceso (nombre_usuario, correo_electronico, contrasena_hash, rol_id)
		VALUES ($1, $2, $3, $4)`,
		"Administrador", correo, hash, rolID)
	return err
}
