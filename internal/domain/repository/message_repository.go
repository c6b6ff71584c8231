package repository

import (
	"context"

	"supportdesk/internal/domain/entity"
)

type MessageRepository interface {
	// List returns the whole chats log, newest first (the log's native order).
	List(ctx context.Context) ([]*entity.ChatMessage, error)

	ListRecent(ctx context.Context, limit int) ([]*entity.ChatMessage, error)

	// Watch delivers the full log snapshot once immediately and again after
	// every change, until ctx is cancelled. The channel is closed when the
	// subscription ends, including on subscription error.
	Watch(ctx context.Context) (<-chan []*entity.ChatMessage, error)

	Create(ctx context.Context, message *entity.ChatMessage) (string, error)

	// MarkRead flips isRead to true on a single message. Re-applying it to an
	// already-read message is a no-op at the storage layer.
	MarkRead(ctx context.Context, id string) error

	// CreateReplyMirror writes the legacy per-user copy of an admin reply to
	// conversations/{recipientUID}/messages.
	CreateReplyMirror(ctx context.Context, recipientUID string, mirror *entity.ReplyMirror) (string, error)
}
