package handler

import (
	"github.com/labstack/echo/v4"

	"supportdesk/internal/usecase"
	"supportdesk/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

// Badge returns the unread notification count.
func (h *NotificationHandler) Badge(c echo.Context) error {
	count, err := h.notificationUseCase.Badge(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"unread": count})
}

// MarkRead marks the observed unread notifications as read, mirroring the
// side effect of opening the messages surface.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	updated, err := h.notificationUseCase.ObserveAndMarkRead(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"updated": updated})
}
