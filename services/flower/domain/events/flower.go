package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for flower lifecycle events.
const (
	TopicFlowerCreated = "flower.created"
	TopicFlowerDeleted = "flower.deleted"
)

// FlowerCreatedEvent is published after a new Flower is persisted.
// The worker consumes it to warm the Redis read-model cache.
type FlowerCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	FlowerID    uuid.UUID `json:"flower_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// FlowerDeletedEvent is published after a Flower is removed.
// The worker consumes it to evict the cache entry.
type FlowerDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	FlowerID   uuid.UUID `json:"flower_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
