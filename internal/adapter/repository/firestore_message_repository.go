package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/domain/repository"
	"supportdesk/pkg/errors"
	"supportdesk/pkg/logger"
)

const (
	chatsCollection         = "chats"
	conversationsCollection = "conversations"
	mirrorSubcollection     = "messages"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) List(ctx context.Context) ([]*entity.ChatMessage, error) {
	query := r.client.Collection(chatsCollection).OrderBy("timestamp", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreMessageRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ChatMessage, error) {
	query := r.client.Collection(chatsCollection).OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collect(query.Documents(ctx))
}

func (r *firestoreMessageRepository) collect(iter *firestore.DocumentIterator) ([]*entity.ChatMessage, error) {
	var messages []*entity.ChatMessage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message document %s: %v", doc.Ref.ID, err)
			continue
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreMessageRepository) Watch(ctx context.Context) (<-chan []*entity.ChatMessage, error) {
	snapshots := r.client.Collection(chatsCollection).OrderBy("timestamp", firestore.Desc).Snapshots(ctx)
	out := make(chan []*entity.ChatMessage, 1)

	go func() {
		defer snapshots.Stop()
		defer close(out)

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Message subscription terminated: %v", err)
				}
				return
			}

			messages := decodeMessageDocs(snap)

			select {
			case <-out:
			default:
			}
			out <- messages
		}
	}()

	return out, nil
}

func decodeMessageDocs(snap *firestore.QuerySnapshot) []*entity.ChatMessage {
	docs, err := snap.Documents.GetAll()
	if err != nil {
		logger.Error("Failed to read message snapshot: %v", err)
		return nil
	}

	var messages []*entity.ChatMessage
	for _, doc := range docs {
		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message document %s: %v", doc.Ref.ID, err)
			continue
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}
	return messages
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) (string, error) {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	_, err := r.client.Collection(chatsCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return "", errors.Internal("Failed to create message", err)
	}

	return message.ID, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, id string) error {
	docRef := r.client.Collection(chatsCollection).Doc(id)

	// Partial-field update; never replaces the document.
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			logger.Warn("MarkRead: message %s no longer exists", id)
			return nil
		}
		return errors.Internal("Failed to update message read status", err)
	}

	return nil
}

func (r *firestoreMessageRepository) CreateReplyMirror(ctx context.Context, recipientUID string, mirror *entity.ReplyMirror) (string, error) {
	id := uuid.New().String()

	_, err := r.client.Collection(conversationsCollection).
		Doc(recipientUID).
		Collection(mirrorSubcollection).
		Doc(id).
		Set(ctx, mirror)
	if err != nil {
		return "", errors.Internal("Failed to create reply mirror", err)
	}

	return id, nil
}
