package service

import (
	"context"

	"mapnmeet/internal/domain/entity"
)

// ActivityEvent is the payload published when an activity changes in a way
// its joinees should hear about. The fan-out into per-recipient notification
// rows happens asynchronously, outside the transaction that caused the event.
type ActivityEvent struct {
	RequestID     string                  `json:"request_id,omitempty"` // For distributed tracing
	Type          entity.NotificationType `json:"type"`
	ActivityID    string                  `json:"activity_id"`
	ActorID       string                  `json:"actor_id"`
	ActivityTitle string                  `json:"activity_title"`
	Message       string                  `json:"message"`
	RecipientIDs  []string                `json:"recipient_ids"`
}

// EventPublisher defines the interface for publishing activity events for
// async processing. Publishing is best-effort: callers log failures and move
// on, they never roll back the triggering operation.
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async fan-out.
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
