package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/repositories"
	"inventario-iuca/internal/services"
	"inventario-iuca/pkg/config"
	"inventario-iuca/pkg/middleware"
	"inventario-iuca/pkg/service"
)

// InitRouter arma el grafo de dependencias completo y registra todas las
// rutas bajo /api. El único punto de entrada público es /api/auth/login.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtService service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) {
	// Repositorios
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	accesoRepo := repositories.NewAccesoRepository(dbConn, logger)
	usuarioRepo := repositories.NewUsuarioRepository(dbConn)
	permisoRepo := repositories.NewPermisoRepository(dbConn)
	catalogoRepo := repositories.NewCatalogoRepository(dbConn)
	equipoRepo := repositories.NewEquipoRepository(dbConn, logger)
	mobiliarioRepo := repositories.NewMobiliarioRepository(dbConn, logger)
	movimientoRepo := repositories.NewMovimientoRepository(dbConn)

	// Servicios
	gateService := services.NewGateService(permisoRepo, cacheRepo, cfg.Inventario.PermisosCacheTTL, logger)
	authService := services.NewAuthService(accesoRepo, permisoRepo, jwtService, logger)
	catalogoService := services.NewCatalogoService(catalogoRepo)
	usuarioService := services.NewUsuarioService(usuarioRepo, accesoRepo, logger)
	equipoService := services.NewEquipoService(equipoRepo, txManager, cfg.Inventario.SucursalPorDefecto, logger)
	mobiliarioService := services.NewMobiliarioService(mobiliarioRepo, cfg.Inventario.SucursalPorDefecto, logger)
	movimientoService := services.NewMovimientoService(movimientoRepo, equipoRepo, mobiliarioRepo, logger)

	// Middlewares de acceso
	authMW := middleware.AuthMiddleware(jwtService, logger)
	guard := middleware.NewPermissionGuard(accesoRepo, gateService, logger)

	api := e.Group("/api")

	runAuthRouter(api, authService, authMW, logger)
	runCatalogoRouter(api, catalogoService, authMW, logger)
	runUsuarioRouter(api, usuarioService, authMW, guard, logger)
	runEquipoRouter(api, equipoService, authMW, guard, logger)
	runMobiliarioRouter(api, mobiliarioService, authMW, guard, logger)
	runMovimientoRouter(api, movimientoService, authMW, guard, logger)
}
