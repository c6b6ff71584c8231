package router

import (
	"github.com/labstack/echo/v4"

	"supportdesk/internal/adapter/api/handler"
	"supportdesk/internal/adapter/api/middleware"
)

func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)
	conversations.Use(adminMiddleware.AdminOnly)

	conversations.GET("", conversationHandler.ListConversations)
	conversations.GET("/:uid/messages", conversationHandler.GetThread)
	conversations.PUT("/:uid/read", conversationHandler.MarkThreadRead)
	conversations.POST("/:uid/replies", conversationHandler.SendReply)
}
