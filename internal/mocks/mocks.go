package mocks

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/mock"

	"supportdesk/internal/domain/entity"
)

type PresenceRepositoryMock struct {
	mock.Mock
}

func (m *PresenceRepositoryMock) List(ctx context.Context) ([]*entity.UserPresence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserPresence), args.Error(1)
}

func (m *PresenceRepositoryMock) Watch(ctx context.Context) (<-chan []*entity.UserPresence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chan []*entity.UserPresence), args.Error(1)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) List(ctx context.Context) ([]*entity.ChatMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ChatMessage), args.Error(1)
}

func (m *MessageRepositoryMock) ListRecent(ctx context.Context, limit int) ([]*entity.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ChatMessage), args.Error(1)
}

func (m *MessageRepositoryMock) Watch(ctx context.Context) (<-chan []*entity.ChatMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chan []*entity.ChatMessage), args.Error(1)
}

func (m *MessageRepositoryMock) Create(ctx context.Context, message *entity.ChatMessage) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *MessageRepositoryMock) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MessageRepositoryMock) CreateReplyMirror(ctx context.Context, recipientUID string, mirror *entity.ReplyMirror) (string, error) {
	args := m.Called(ctx, recipientUID, mirror)
	return args.String(0), args.Error(1)
}

type NotificationRepositoryMock struct {
	mock.Mock
}

func (m *NotificationRepositoryMock) ListUnread(ctx context.Context, limit int) ([]*entity.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *NotificationRepositoryMock) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AuthClientMock struct {
	mock.Mock
}

func (m *AuthClientMock) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

func (m *AuthClientMock) SetAdminClaim(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *AuthClientMock) VerifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *AuthClientMock) GetUser(ctx context.Context, uid string) (*entity.AdminProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminProfile), args.Error(1)
}

func (m *AuthClientMock) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *AuthClientMock) SignInWithEmailPassword(email, password string) (string, string, error) {
	args := m.Called(email, password)
	return args.String(0), args.String(1), args.Error(2)
}
