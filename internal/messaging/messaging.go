package messaging

import (
	"context"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

// Publisher defines an interface for publishing domain events to a
// message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event entity.Event) error
}

// Subscriber defines an interface for subscribing to a message topic.
type Subscriber interface {
	Consume(ctx context.Context, topic string, groupID string, handler func(ctx context.Context, payload []byte) error)
}
