package usecase

import (
	"context"
	"math"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/domain/repository"
)

type StatsUseCase struct {
	presenceRepo     repository.PresenceRepository
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository
	recentLimit      int
	badgeLimit       int
}

func NewStatsUseCase(
	presenceRepo repository.PresenceRepository,
	messageRepo repository.MessageRepository,
	notificationRepo repository.NotificationRepository,
	recentLimit, badgeLimit int,
) *StatsUseCase {
	return &StatsUseCase{
		presenceRepo:     presenceRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		recentLimit:      recentLimit,
		badgeLimit:       badgeLimit,
	}
}

type Overview struct {
	TotalUsers          int `json:"total_users"`
	ActiveUsers         int `json:"active_users"`
	TotalMessages       int `json:"total_messages"`
	UnreadNotifications int `json:"unread_notifications"`
}

type Analytics struct {
	TotalUsers         int                    `json:"total_users"`
	ActiveUsers        int                    `json:"active_users"`
	TotalMessages      int                    `json:"total_messages"`
	EngagementPercent  int                    `json:"engagement_percent"`
	AvgMessagesPerUser int                    `json:"avg_messages_per_user"`
	UserActivity       []*entity.UserPresence `json:"user_activity"`
	RecentMessages     []*entity.ChatMessage  `json:"recent_messages"`
}

func (uc *StatsUseCase) Overview(ctx context.Context) (*Overview, error) {
	presence, err := uc.presenceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := uc.messageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := uc.notificationRepo.ListUnread(ctx, uc.badgeLimit)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalUsers:          len(presence),
		ActiveUsers:         countActive(presence),
		TotalMessages:       len(messages),
		UnreadNotifications: len(unread),
	}, nil
}

func (uc *StatsUseCase) Analytics(ctx context.Context) (*Analytics, error) {
	presence, err := uc.presenceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.messageRepo.ListRecent(ctx, uc.recentLimit)
	if err != nil {
		return nil, err
	}

	total := len(presence)
	active := countActive(presence)

	analytics := &Analytics{
		TotalUsers:     total,
		ActiveUsers:    active,
		TotalMessages:  len(recent),
		UserActivity:   presence,
		RecentMessages: recent,
	}
	if total > 0 {
		analytics.EngagementPercent = int(math.Round(float64(active) / float64(total) * 100))
		analytics.AvgMessagesPerUser = int(math.Round(float64(len(recent)) / float64(total)))
	}
	return analytics, nil
}

func countActive(presence []*entity.UserPresence) int {
	active := 0
	for _, user := range presence {
		if user.IsActive {
			active++
		}
	}
	return active
}
