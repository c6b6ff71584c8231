package usecase

import (
	"context"
	"sort"
	"strings"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/domain/repository"
	"supportdesk/internal/observability"
	"supportdesk/pkg/errors"
	"supportdesk/pkg/logger"
)

type ConversationUseCase struct {
	presenceRepo repository.PresenceRepository
	messageRepo  repository.MessageRepository
}

func NewConversationUseCase(presenceRepo repository.PresenceRepository, messageRepo repository.MessageRepository) *ConversationUseCase {
	return &ConversationUseCase{
		presenceRepo: presenceRepo,
		messageRepo:  messageRepo,
	}
}

// ConversationSummary is one row of the conversation list: a merged
// participant plus their unread count.
type ConversationSummary struct {
	entity.Participant
	Unread int `json:"unread"`
}

// MergeParticipants builds the deduplicated participant set from the presence
// records and the distinct senders in the message log. Presence records win
// on conflict; senders known only from messages default to inactive, with
// their most recent message time as last activity.
func MergeParticipants(presence []*entity.UserPresence, messages []*entity.ChatMessage) []*entity.Participant {
	merged := make(map[string]*entity.Participant)
	var order []string

	for _, user := range presence {
		if _, ok := merged[user.UID]; ok {
			continue
		}
		merged[user.UID] = &entity.Participant{
			UID:         user.UID,
			DisplayName: user.DisplayName,
			LastActive:  user.LastActive,
			IsActive:    user.IsActive,
		}
		order = append(order, user.UID)
	}

	for _, msg := range messages {
		if msg.UID == "" || msg.UID == entity.AdminUID || msg.IsAdmin {
			continue
		}
		if _, ok := merged[msg.UID]; ok {
			continue
		}

		name := msg.DisplayName
		if name == "" {
			name = "Anonymous"
		}
		merged[msg.UID] = &entity.Participant{
			UID:         msg.UID,
			DisplayName: name,
			LastActive:  msg.Timestamp,
			IsActive:    false,
		}
		order = append(order, msg.UID)
	}

	participants := make([]*entity.Participant, 0, len(order))
	for _, uid := range order {
		participants = append(participants, merged[uid])
	}
	return participants
}

// ThreadFor filters the log down to one participant's conversation, ordered
// oldest first. Both historical admin-authoring conventions are honored: a
// reply may be marked with isAdmin plus recipientId, or merely authored by
// the reserved admin uid with a recipientId.
func ThreadFor(uid string, messages []*entity.ChatMessage) []*entity.ChatMessage {
	var thread []*entity.ChatMessage
	for _, msg := range messages {
		switch {
		case msg.UID == uid && !msg.IsAdmin:
			thread = append(thread, msg)
		case msg.IsAdmin && msg.RecipientID == uid:
			thread = append(thread, msg)
		case msg.UID == entity.AdminUID && msg.RecipientID == uid:
			thread = append(thread, msg)
		}
	}

	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].Timestamp.Before(thread[j].Timestamp)
	})
	return thread
}

// UnreadCount counts the participant's own unread messages. Admin-authored
// messages never count, regardless of read state.
func UnreadCount(uid string, messages []*entity.ChatMessage) int {
	count := 0
	for _, msg := range messages {
		if msg.UID == uid && !msg.IsAdmin && !msg.IsRead {
			count++
		}
	}
	return count
}

// UnreadCounts computes every participant's unread count in one pass.
func UnreadCounts(messages []*entity.ChatMessage) map[string]int {
	counts := make(map[string]int)
	for _, msg := range messages {
		if msg.UID != entity.AdminUID && !msg.IsAdmin && !msg.IsRead {
			counts[msg.UID]++
		}
	}
	return counts
}

func (uc *ConversationUseCase) ListConversations(ctx context.Context) ([]ConversationSummary, error) {
	presence, err := uc.presenceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := uc.messageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return BuildSummaries(presence, messages), nil
}

// BuildSummaries merges the two snapshots into the displayed conversation
// list: deduplicated participants with unread counts, most recently active
// first. Merge order itself is not meaningful.
func BuildSummaries(presence []*entity.UserPresence, messages []*entity.ChatMessage) []ConversationSummary {
	participants := MergeParticipants(presence, messages)
	counts := UnreadCounts(messages)

	summaries := make([]ConversationSummary, 0, len(participants))
	for _, p := range participants {
		summaries = append(summaries, ConversationSummary{
			Participant: *p,
			Unread:      counts[p.UID],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastActive.After(summaries[j].LastActive)
	})
	return summaries
}

func (uc *ConversationUseCase) Thread(ctx context.Context, uid string) ([]*entity.ChatMessage, error) {
	messages, err := uc.messageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ThreadFor(uid, messages), nil
}

// MarkThreadRead flags every unread user message of the participant as read.
// Each update stands alone: failures are logged and skipped, never rolled
// back, and re-running over already-read messages issues no writes.
func (uc *ConversationUseCase) MarkThreadRead(ctx context.Context, uid string) (int, error) {
	messages, err := uc.messageRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	return uc.MarkThreadReadSnapshot(ctx, uid, messages), nil
}

// MarkThreadReadSnapshot is the snapshot-driven variant used by the live
// feed, which already holds the latest message set.
func (uc *ConversationUseCase) MarkThreadReadSnapshot(ctx context.Context, uid string, messages []*entity.ChatMessage) int {
	issued := 0
	for _, msg := range messages {
		if msg.UID != uid || msg.IsAdmin || msg.IsRead {
			continue
		}
		if err := uc.messageRepo.MarkRead(ctx, msg.ID); err != nil {
			logger.Error("Failed to mark message %s read: %v", msg.ID, err)
			continue
		}
		issued++
	}

	if issued > 0 {
		observability.CountReadMarks(issued)
	}
	return issued
}

// ReplyOutcome reports the dual write behind an admin reply. The two writes
// share no transaction, so each side succeeds or fails on its own and the
// caller must see which. There is no idempotency key: re-invoking SendReply
// after a partial failure creates brand-new records and can duplicate the
// end-user-visible reply.
type ReplyOutcome struct {
	PrimaryID  string `json:"primary_id,omitempty"`
	MirrorID   string `json:"mirror_id,omitempty"`
	PrimaryErr error  `json:"-"`
	MirrorErr  error  `json:"-"`
}

const (
	ReplyOK            = "ok"
	ReplyPrimaryFailed = "primary_failed"
	ReplyMirrorFailed  = "mirror_failed"
	ReplyBothFailed    = "both_failed"
)

func (o *ReplyOutcome) Status() string {
	switch {
	case o.PrimaryErr == nil && o.MirrorErr == nil:
		return ReplyOK
	case o.PrimaryErr != nil && o.MirrorErr != nil:
		return ReplyBothFailed
	case o.PrimaryErr != nil:
		return ReplyPrimaryFailed
	default:
		return ReplyMirrorFailed
	}
}

// SendReply writes the admin reply into the chats log and mirrors it into
// the recipient's legacy conversations sub-log. Both writes are always
// attempted; a failure on one never cancels the other.
func (uc *ConversationUseCase) SendReply(ctx context.Context, uid, text string) (*ReplyOutcome, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Reply text must not be empty", nil)
	}
	if uid == "" || uid == entity.AdminUID {
		return nil, errors.BadRequest("Invalid recipient", nil)
	}

	outcome := &ReplyOutcome{}

	primaryID, err := uc.messageRepo.Create(ctx, &entity.ChatMessage{
		Text:        text,
		UID:         entity.AdminUID,
		DisplayName: "Admin",
		IsRead:      false,
		IsAdmin:     true,
		RecipientID: uid,
	})
	if err != nil {
		logger.Error("Reply to %s: primary write failed: %v", uid, err)
		outcome.PrimaryErr = err
	} else {
		outcome.PrimaryID = primaryID
	}

	mirrorID, err := uc.messageRepo.CreateReplyMirror(ctx, uid, &entity.ReplyMirror{
		Sender:  entity.AdminUID,
		Content: text,
		UserID:  entity.AdminUID,
	})
	if err != nil {
		logger.Error("Reply to %s: mirror write failed: %v", uid, err)
		outcome.MirrorErr = err
	} else {
		outcome.MirrorID = mirrorID
	}

	observability.CountReply(outcome.Status())
	return outcome, nil
}
