package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventario-iuca/internal/controllers"
	"inventario-iuca/internal/services"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, authMW echo.MiddlewareFunc, logger *zap.Logger) {
	ctrl := controllers.NewAuthController(authService, logger)

	auth := api.Group("/auth")
	auth.POST("/login", ctrl.Login)
	auth.GET("/me", ctrl.Me, authMW)
	auth.POST("/logout", ctrl.Logout, authMW)
}
