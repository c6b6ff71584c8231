package handler

import (
	"supportdesk/internal/usecase"
)

var (
	authHandler         *AuthHandler
	conversationHandler *ConversationHandler
	statsHandler        *StatsHandler
	notificationHandler *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	statsUseCase *usecase.StatsUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	conversationHandler = NewConversationHandler(conversationUseCase)
	statsHandler = NewStatsHandler(statsUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetStatsHandler() *StatsHandler {
	return statsHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
