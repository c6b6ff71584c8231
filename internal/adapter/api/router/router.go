package router

import (
	"github.com/labstack/echo/v4"

	"supportdesk/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupConversationRouter(e, authMiddleware, adminMiddleware)
	SetupStatsRouter(e, authMiddleware, adminMiddleware)
	SetupNotificationRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
