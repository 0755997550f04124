package visit

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Cache stores JSON-encodable values. Implementations: redis.Client, memtable.MemTable.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// EventPublisher ships an encoded domain event. messageID must be unique per event.
type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}
