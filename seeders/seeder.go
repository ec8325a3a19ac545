package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"inventario-iuca/internal/services"
)

// SeedCatalogos llena los catálogos base que no dependen de nada más.
func SeedCatalogos(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Llenando catálogos base...")

	if err := seedAreas(ctx, db); err != nil {
		log.Fatalf("❌ Error llenando áreas: %v", err)
	}
	if err := seedTiposActivo(ctx, db); err != nil {
		log.Fatalf("❌ Error llenando tipos de activo: %v", err)
	}
	if err := seedEstados(ctx, db); err != nil {
		log.Fatalf("❌ Error llenando estados: %v", err)
	}
	if err := seedTiposMobiliario(ctx, db); err != nil {
		log.Fatalf("❌ Error llenando tipos de mobiliario: %v", err)
	}
	log.Println("✅ Catálogos base listos")
}

// SeedRolesYAdmin crea los roles, sus permisos por módulo y la cuenta de
// administrador inicial. Depende de los catálogos.
func SeedRolesYAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Configurando roles, permisos y administrador...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("❌ Error llenando roles: %v", err)
	}
	if err := seedPermisos(ctx, db); err != nil {
		log.Fatalf("❌ Error llenando permisos: %v", err)
	}
	if err := seedAdmin(ctx, db); err != nil {
		log.Fatalf("❌ Error creando administrador: %v", err)
	}

	log.Println("✅ Roles y administrador listos")
}

// RefrescarCachePermisos tira el mapa de permisos cacheado de cada rol para
// que la siguiente petición lea la tabla permisos recién sembrada.
func RefrescarCachePermisos(db *pgxpool.Pool, gate services.GateServiceInterface) {
	ctx := context.Background()
	log.Println("▶️  Invalidando la caché de permisos...")

	rows, err := db.Query(ctx, "SELECT id_rol FROM cat_roles")
	if err != nil {
		log.Printf("⚠️  No se pudieron leer los roles para invalidar su caché: %v", err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var rolID uint64
		if err := rows.Scan(&rolID); err != nil {
			log.Printf("⚠️  Error leyendo un rol: %v", err)
			return
		}
		if err := gate.InvalidateRol(ctx, rolID); err != nil {
			log.Printf("⚠️  No se pudo invalidar la caché del rol %d: %v", rolID, err)
		}
	}
	log.Println("✅ Caché de permisos invalidada")
}
