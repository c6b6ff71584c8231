package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/domain/repository"
	"supportdesk/internal/observability"
	"supportdesk/pkg/logger"
)

// Pusher delivers recomputed views to connected dashboard clients.
// Implemented by the websocket manager.
type Pusher interface {
	Broadcast(message []byte)
	Send(clientID string, message []byte)
	Selections() map[string]string
}

type feedFrame struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type conversationsPayload struct {
	Participants []ConversationSummary `json:"participants"`
	TotalUnread  int                   `json:"total_unread"`
}

type threadPayload struct {
	UID      string                `json:"uid"`
	Messages []*entity.ChatMessage `json:"messages"`
}

// FeedUseCase consumes the presence and message live feeds and keeps every
// connected dashboard client current. The two feeds update independently
// with no cross-feed ordering, so every event triggers a full recomputation
// from the latest snapshot of each feed; nothing is patched incrementally.
type FeedUseCase struct {
	conversations *ConversationUseCase
	presenceRepo  repository.PresenceRepository
	messageRepo   repository.MessageRepository
	pusher        Pusher

	mu           sync.Mutex
	presence     []*entity.UserPresence
	messages     []*entity.ChatMessage
	haveMessages bool
	runCtx       context.Context
}

func NewFeedUseCase(
	conversations *ConversationUseCase,
	presenceRepo repository.PresenceRepository,
	messageRepo repository.MessageRepository,
	pusher Pusher,
) *FeedUseCase {
	return &FeedUseCase{
		conversations: conversations,
		presenceRepo:  presenceRepo,
		messageRepo:   messageRepo,
		pusher:        pusher,
	}
}

// Start opens both subscriptions and runs the recompute loop until ctx is
// cancelled. Cancelling ctx releases both subscriptions.
func (uc *FeedUseCase) Start(ctx context.Context) error {
	presenceCh, err := uc.presenceRepo.Watch(ctx)
	if err != nil {
		return err
	}
	messageCh, err := uc.messageRepo.Watch(ctx)
	if err != nil {
		return err
	}

	uc.runCtx = ctx

	go func() {
		for {
			select {
			case presence, ok := <-presenceCh:
				if !ok {
					logger.Warn("Presence feed closed; dashboard view frozen until restart")
					presenceCh = nil
					continue
				}
				observability.ObserveSnapshot("presence")
				uc.mu.Lock()
				uc.presence = presence
				uc.mu.Unlock()
				uc.recompute(ctx, false)

			case messages, ok := <-messageCh:
				if !ok {
					logger.Warn("Message feed closed; dashboard view frozen until restart")
					messageCh = nil
					continue
				}
				observability.ObserveSnapshot("messages")
				uc.mu.Lock()
				uc.messages = messages
				uc.haveMessages = true
				uc.mu.Unlock()
				uc.recompute(ctx, true)

			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// HandleSelect reacts to a client selecting a conversation: it receives the
// thread immediately and the thread's unread messages are flagged read.
func (uc *FeedUseCase) HandleSelect(clientID, uid string) {
	uc.mu.Lock()
	messages := uc.messages
	ready := uc.haveMessages
	uc.mu.Unlock()

	if !ready || uid == "" {
		return
	}

	uc.sendThread(clientID, uid, messages)
	uc.conversations.MarkThreadReadSnapshot(uc.runCtx, uid, messages)
}

func (uc *FeedUseCase) recompute(ctx context.Context, fromMessages bool) {
	uc.mu.Lock()
	presence := uc.presence
	messages := uc.messages
	uc.mu.Unlock()

	summaries := BuildSummaries(presence, messages)
	total := 0
	for _, s := range summaries {
		total += s.Unread
	}

	frame, err := json.Marshal(feedFrame{
		Type: "conversations",
		Data: conversationsPayload{Participants: summaries, TotalUnread: total},
	})
	if err != nil {
		logger.Error("Failed to encode conversations frame: %v", err)
		return
	}
	uc.pusher.Broadcast(frame)

	for clientID, uid := range uc.pusher.Selections() {
		if uid == "" {
			continue
		}
		uc.sendThread(clientID, uid, messages)
		if fromMessages {
			uc.conversations.MarkThreadReadSnapshot(ctx, uid, messages)
		}
	}
}

func (uc *FeedUseCase) sendThread(clientID, uid string, messages []*entity.ChatMessage) {
	frame, err := json.Marshal(feedFrame{
		Type: "thread",
		Data: threadPayload{UID: uid, Messages: ThreadFor(uid, messages)},
	})
	if err != nil {
		logger.Error("Failed to encode thread frame: %v", err)
		return
	}
	uc.pusher.Send(clientID, frame)
}
