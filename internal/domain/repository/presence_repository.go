package repository

import (
	"context"

	"supportdesk/internal/domain/entity"
)

type PresenceRepository interface {
	List(ctx context.Context) ([]*entity.UserPresence, error)

	// Watch delivers the full current presence set once immediately and again
	// after every change, until ctx is cancelled. The channel is closed when
	// the subscription ends, including on subscription error.
	Watch(ctx context.Context) (<-chan []*entity.UserPresence, error)
}
