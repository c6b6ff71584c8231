package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/mocks"
	"supportdesk/internal/usecase"
)

func TestBadgeHandler(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepositoryMock)
	h := NewNotificationHandler(usecase.NewNotificationUseCase(notificationRepo, 10))

	notificationRepo.On("ListUnread", mock.Anything, 10).Return([]*entity.Notification{
		{ID: "n1"}, {ID: "n2"},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/v1/notifications/unread", "")
	require.NoError(t, h.Badge(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unread":2`)
}

func TestMarkReadHandler(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepositoryMock)
	h := NewNotificationHandler(usecase.NewNotificationUseCase(notificationRepo, 10))

	notificationRepo.On("ListUnread", mock.Anything, 0).Return([]*entity.Notification{
		{ID: "n1"},
	}, nil).Once()
	notificationRepo.On("MarkRead", mock.Anything, "n1").Return(nil).Once()

	c, rec := newTestContext(http.MethodPut, "/v1/notifications/read", "")
	require.NoError(t, h.MarkRead(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":1`)
	notificationRepo.AssertExpectations(t)
}
