package router

import (
	"github.com/labstack/echo/v4"

	"supportdesk/internal/adapter/api/handler"
	"supportdesk/internal/adapter/api/middleware"
)

func SetupStatsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	statsHandler := handler.GetStatsHandler()

	stats := e.Group("/v1/stats")
	stats.Use(authMiddleware.Authenticate)
	stats.Use(adminMiddleware.AdminOnly)

	stats.GET("/overview", statsHandler.Overview)
	stats.GET("/analytics", statsHandler.Analytics)
}
