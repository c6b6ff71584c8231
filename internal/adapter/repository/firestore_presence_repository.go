package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/domain/repository"
	"supportdesk/pkg/errors"
	"supportdesk/pkg/logger"
)

const presenceCollection = "userStatus"

type firestorePresenceRepository struct {
	client *firestore.Client
}

func NewFirestorePresenceRepository(client *firestore.Client) repository.PresenceRepository {
	return &firestorePresenceRepository{
		client: client,
	}
}

func (r *firestorePresenceRepository) List(ctx context.Context) ([]*entity.UserPresence, error) {
	iter := r.client.Collection(presenceCollection).OrderBy("lastActive", firestore.Desc).Documents(ctx)
	var users []*entity.UserPresence

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate presence records", err)
		}

		var user entity.UserPresence
		if err := doc.DataTo(&user); err != nil {
			logger.Warn("Skipping malformed presence document %s: %v", doc.Ref.ID, err)
			continue
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *firestorePresenceRepository) Watch(ctx context.Context) (<-chan []*entity.UserPresence, error) {
	snapshots := r.client.Collection(presenceCollection).OrderBy("lastActive", firestore.Desc).Snapshots(ctx)
	out := make(chan []*entity.UserPresence, 1)

	go func() {
		defer snapshots.Stop()
		defer close(out)

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Presence subscription terminated: %v", err)
				}
				return
			}

			users := decodePresenceDocs(snap)

			// Latest snapshot wins; a slow consumer never sees stale state.
			select {
			case <-out:
			default:
			}
			out <- users
		}
	}()

	return out, nil
}

func decodePresenceDocs(snap *firestore.QuerySnapshot) []*entity.UserPresence {
	docs, err := snap.Documents.GetAll()
	if err != nil {
		logger.Error("Failed to read presence snapshot: %v", err)
		return nil
	}

	var users []*entity.UserPresence
	for _, doc := range docs {
		var user entity.UserPresence
		if err := doc.DataTo(&user); err != nil {
			logger.Warn("Skipping malformed presence document %s: %v", doc.Ref.ID, err)
			continue
		}
		users = append(users, &user)
	}
	return users
}
