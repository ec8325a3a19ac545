package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"inventario-iuca/internal/repositories"
	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/config"
	"inventario-iuca/pkg/database/postgresql"
	"inventario-iuca/seeders"
)

func runMigrations(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("❌ No se pudo abrir la conexión para migraciones: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("❌ Dialecto de goose inválido: %v", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("❌ Error aplicando migraciones: %v", err)
	}
	log.Println("✅ Migraciones aplicadas")
}

func main() {
	log.Println("======================================================")
	log.Println("        🌱 Siembra de datos del inventario")
	log.Println("======================================================")

	runMigrate := flag.Bool("migrate", false, "Aplicar las migraciones pendientes antes de sembrar")
	runCatalogos := flag.Bool("catalogos", false, "Llenar los catálogos base (áreas, tipos, estados)")
	runRoles := flag.Bool("roles", false, "Crear roles, permisos y la cuenta de administrador")
	runAll := flag.Bool("all", false, "Ejecutar todo (equivale a -migrate -catalogos -roles)")

	flag.Parse()

	if !*runMigrate && !*runCatalogos && !*runRoles && !*runAll {
		log.Println("❌ No se eligió ninguna operación.")
		log.Println("")
		log.Println("Banderas disponibles:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Ejemplos:")
		log.Println("  go run ./seeders/cmd/seed -migrate")
		log.Println("  go run ./seeders/cmd/seed -catalogos -roles")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()

	if *runAll || *runMigrate {
		runMigrations(cfg.Postgres.DSN)
		log.Println("======================================================")
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCatalogos {
		seeders.SeedCatalogos(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runRoles {
		// Los roles y el administrador dependen de los catálogos.
		seeders.SeedRolesYAdmin(dbPool)

		// Los permisos cambiaron: los mapas cacheados en Redis quedan viejos.
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		cacheRepo := repositories.NewRedisCacheRepository(redisClient)
		permisoRepo := repositories.NewPermisoRepository(dbPool)
		gate := services.NewGateService(permisoRepo, cacheRepo, cfg.Inventario.PermisosCacheTTL, zap.NewNop())
		seeders.RefrescarCachePermisos(dbPool, gate)
		log.Println("======================================================")
	}

	log.Println("✅ Operaciones de siembra completadas")
}
