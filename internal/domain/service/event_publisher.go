package service

import (
	"context"
	"time"
)

// DailySyncedEvent announces a committed daily record for downstream consumers.
type DailySyncedEvent struct {
	EventID   string    `json:"event_id"`
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Source    string    `json:"source"`
	Steps     int       `json:"steps"`
	Calories  *int      `json:"calories"`
	SyncedAt  time.Time `json:"synced_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDailySynced publishes a sync completion event
	PublishDailySynced(ctx context.Context, event *DailySyncedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
