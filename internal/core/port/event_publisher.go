package port

import (
	"context"

	"hermes-ido/internal/core/domain"
)

// EventPublisher delivers committed campaign events to observers. Publish
// is called after the mutation is stored, so a failure never undoes it.
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event) error
}
