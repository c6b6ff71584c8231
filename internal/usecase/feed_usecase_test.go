package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/mocks"
)

type recordingPusher struct {
	mu         sync.Mutex
	broadcasts [][]byte
	sends      map[string][][]byte
	selections map[string]string
}

func newRecordingPusher() *recordingPusher {
	return &recordingPusher{
		sends:      make(map[string][][]byte),
		selections: make(map[string]string),
	}
}

func (p *recordingPusher) Broadcast(message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.broadcasts = append(p.broadcasts, message)
}

func (p *recordingPusher) Send(clientID string, message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends[clientID] = append(p.sends[clientID], message)
}

func (p *recordingPusher) Selections() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string, len(p.selections))
	for k, v := range p.selections {
		out[k] = v
	}
	return out
}

func (p *recordingPusher) setSelection(clientID, uid string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selections[clientID] = uid
}

func (p *recordingPusher) broadcastCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.broadcasts)
}

func (p *recordingPusher) lastBroadcast() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.broadcasts) == 0 {
		return nil
	}
	return p.broadcasts[len(p.broadcasts)-1]
}

func (p *recordingPusher) sendCount(clientID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sends[clientID])
}

func (p *recordingPusher) lastSend(clientID string) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	frames := p.sends[clientID]
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

func startFeed(t *testing.T, presenceRepo *mocks.PresenceRepositoryMock, messageRepo *mocks.MessageRepositoryMock) (*FeedUseCase, *recordingPusher, chan []*entity.UserPresence, chan []*entity.ChatMessage) {
	t.Helper()

	presenceCh := make(chan []*entity.UserPresence, 1)
	messageCh := make(chan []*entity.ChatMessage, 1)
	presenceRepo.On("Watch", mock.Anything).Return(presenceCh, nil).Once()
	messageRepo.On("Watch", mock.Anything).Return(messageCh, nil).Once()

	pusher := newRecordingPusher()
	conversations := NewConversationUseCase(presenceRepo, messageRepo)
	feed := NewFeedUseCase(conversations, presenceRepo, messageRepo, pusher)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, feed.Start(ctx))

	return feed, pusher, presenceCh, messageCh
}

func TestFeedBroadcastsConversationsOnPresenceEvent(t *testing.T) {
	presenceRepo := new(mocks.PresenceRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	_, pusher, presenceCh, _ := startFeed(t, presenceRepo, messageRepo)

	presenceCh <- []*entity.UserPresence{
		{UID: "u1", DisplayName: "Alice", LastActive: base, IsActive: true},
	}

	require.Eventually(t, func() bool {
		return pusher.broadcastCount() >= 1
	}, time.Second, 5*time.Millisecond)

	var frame struct {
		Type string `json:"type"`
		Data struct {
			Participants []ConversationSummary `json:"participants"`
			TotalUnread  int                   `json:"total_unread"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(pusher.lastBroadcast(), &frame))
	assert.Equal(t, "conversations", frame.Type)
	require.Len(t, frame.Data.Participants, 1)
	assert.Equal(t, "u1", frame.Data.Participants[0].UID)
	assert.Equal(t, 0, frame.Data.TotalUnread)
}

func TestFeedRecomputesFromLatestSnapshots(t *testing.T) {
	presenceRepo := new(mocks.PresenceRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	_, pusher, presenceCh, messageCh := startFeed(t, presenceRepo, messageRepo)

	presenceCh <- []*entity.UserPresence{
		{UID: "u1", DisplayName: "Alice", LastActive: base, IsActive: true},
	}
	require.Eventually(t, func() bool {
		return pusher.broadcastCount() >= 1
	}, time.Second, 5*time.Millisecond)

	messageCh <- []*entity.ChatMessage{
		userMsg("m1", "u2", "hi there", base.Add(time.Minute), false),
	}
	require.Eventually(t, func() bool {
		return pusher.broadcastCount() >= 2
	}, time.Second, 5*time.Millisecond)

	// The second frame reflects both feeds: the presence user and the
	// message-only sender.
	var frame struct {
		Type string `json:"type"`
		Data struct {
			Participants []ConversationSummary `json:"participants"`
			TotalUnread  int                   `json:"total_unread"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(pusher.lastBroadcast(), &frame))
	require.Len(t, frame.Data.Participants, 2)
	assert.Equal(t, "u2", frame.Data.Participants[0].UID)
	assert.Equal(t, "Anonymous", frame.Data.Participants[0].DisplayName)
	assert.Equal(t, 1, frame.Data.TotalUnread)
}

func TestFeedPushesThreadAndMarksReadForSelection(t *testing.T) {
	presenceRepo := new(mocks.PresenceRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	_, pusher, _, messageCh := startFeed(t, presenceRepo, messageRepo)

	pusher.setSelection("c1", "u1")
	marked := make(chan struct{})
	messageRepo.On("MarkRead", mock.Anything, "m1").Return(nil).Once().Run(func(mock.Arguments) {
		close(marked)
	})

	messageCh <- []*entity.ChatMessage{
		userMsg("m1", "u1", "hello", base, false),
		userMsg("m2", "u2", "other", base, true),
	}

	require.Eventually(t, func() bool {
		return pusher.sendCount("c1") >= 1
	}, time.Second, 5*time.Millisecond)

	var frame struct {
		Type string `json:"type"`
		Data struct {
			UID      string               `json:"uid"`
			Messages []*entity.ChatMessage `json:"messages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(pusher.lastSend("c1"), &frame))
	assert.Equal(t, "thread", frame.Type)
	assert.Equal(t, "u1", frame.Data.UID)
	require.Len(t, frame.Data.Messages, 1)
	assert.Equal(t, "m1", frame.Data.Messages[0].ID)

	select {
	case <-marked:
	case <-time.After(time.Second):
		t.Fatal("unread message was never marked read")
	}
	messageRepo.AssertExpectations(t)
}

func TestHandleSelectSendsThreadImmediately(t *testing.T) {
	presenceRepo := new(mocks.PresenceRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	feed, pusher, _, messageCh := startFeed(t, presenceRepo, messageRepo)

	messageRepo.On("MarkRead", mock.Anything, "m1").Return(nil).Once()
	messageCh <- []*entity.ChatMessage{
		userMsg("m1", "u1", "hello", base, false),
	}
	require.Eventually(t, func() bool {
		return pusher.broadcastCount() >= 1
	}, time.Second, 5*time.Millisecond)

	feed.HandleSelect("c1", "u1")

	require.Eventually(t, func() bool {
		return pusher.sendCount("c1") >= 1
	}, time.Second, 5*time.Millisecond)
	messageRepo.AssertExpectations(t)
}

func TestHandleSelectBeforeFirstSnapshotIsNoop(t *testing.T) {
	presenceRepo := new(mocks.PresenceRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	feed, pusher, _, _ := startFeed(t, presenceRepo, messageRepo)

	feed.HandleSelect("c1", "u1")

	assert.Equal(t, 0, pusher.sendCount("c1"))
	messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}
