package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var areasData = []string{
	"Dirección",
	"Administración",
	"Sistemas",
	"Contabilidad",
	"Recursos Humanos",
	"Atención a Clientes",
}

func seedAreas(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando tabla 'cat_areas'...")
	for _, nombre := range areasData {
		_, err := db.Exec(ctx,
			`INSERT INTO cat_areas (nombre_area) VALUES ($1) ON CONFLICT (nombre_area) DO NOTHING`, nombre)
		if err != nil {
			return err
		}
	}
	return nil
}

var tiposActivoData = []string{
	"Computadora de escritorio",
	"Laptop",
	"Impresora",
	"Monitor",
	"Servidor",
	"Teléfono IP",
	"Proyector",
}

func seedTiposActivo(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando tabla 'cat_tipos_activo'...")
	for _, nombre := range tiposActivoData {
		_, err := db.Exec(ctx,
			`INSERT INTO cat_tipos_activo (nombre_tipo) VALUES ($1) ON CONFLICT (nombre_tipo) DO NOTHING`, nombre)
		if err != nil {
			return err
		}
	}
	return nil
}

var estadosData = []struct {
	Nombre   string
	ColorHex string
}{
	{"Activo", "#28a745"},
	{"En reparación", "#ffc107"},
	{"En resguardo", "#17a2b8"},
	{"Baja", "#dc3545"},
}

func seedEstados(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando tabla 'cat_estados'...")
	for _, e := range estadosData {
		_, err := db.Exec(ctx,
			`INSERT INTO cat_estados (nombre_estado, color_hex) VALUES ($1, $2) ON CONFLICT (nombre_estado) DO NOTHING`,
			e.Nombre, e.ColorHex)
		if err != nil {
			return err
		}
	}
	return nil
}

var tiposMobiliarioData = []string{
	"Escritorio",
	"Silla",
	"Archivero",
	"Librero",
	"Mesa de juntas",
}

func seedTiposMobiliario(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Llenando tabla 'cat_tipos_mobiliario'...")
	for _, nombre := range tiposMobiliarioData {
		_, err := db.Exec(ctx,
			`INSERT INTO cat_tipos_mobiliario (nombre_tipo) VALUES ($1) ON CONFLICT (nombre_tipo) DO NOTHING`, nombre)
		if err != nil {
			return err
		}
	}
	return nil
}
