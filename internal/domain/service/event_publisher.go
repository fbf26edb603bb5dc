package service

import (
	"context"
	"time"
)

// CacheEvent tells other instances that cached state must be dropped
type CacheEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // e.g. "settings.updated"
	Source     string    `json:"source,omitempty"`     // Instance that published the event
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCacheEvent publishes a cache-invalidation event
	PublishCacheEvent(ctx context.Context, event *CacheEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
