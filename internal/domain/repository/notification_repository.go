package repository

import (
	"context"

	"supportdesk/internal/domain/entity"
)

type NotificationRepository interface {
	// ListUnread returns unread notifications, newest first, capped at limit.
	ListUnread(ctx context.Context, limit int) ([]*entity.Notification, error)

	MarkRead(ctx context.Context, id string) error
}
