package usecase

import (
	"context"

	"supportdesk/internal/domain/repository"
	"supportdesk/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	badgeLimit       int
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, badgeLimit int) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		badgeLimit:       badgeLimit,
	}
}

// Badge returns the unread count shown next to the bell icon.
func (uc *NotificationUseCase) Badge(ctx context.Context) (int, error) {
	unread, err := uc.notificationRepo.ListUnread(ctx, uc.badgeLimit)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

// ObserveAndMarkRead marks the currently unread notifications read, the side
// effect of the admin opening the messages surface. Each update stands
// alone; failures are logged and skipped. Returns the number of updates
// issued.
func (uc *NotificationUseCase) ObserveAndMarkRead(ctx context.Context) (int, error) {
	unread, err := uc.notificationRepo.ListUnread(ctx, 0)
	if err != nil {
		return 0, err
	}

	issued := 0
	for _, notification := range unread {
		if err := uc.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
			logger.Error("Failed to mark notification %s read: %v", notification.ID, err)
			continue
		}
		issued++
	}
	return issued, nil
}
