package usecase

import (
	"context"
	"time"

	"mapnmeet/internal/domain/entity"
	"mapnmeet/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification operations.
type NotificationUsecase interface {
	// List returns a page of the user's unread notifications, newest first.
	List(ctx context.Context, userID uuid.UUID, page, limit int) (*NotificationPage, error)

	// MarkRead marks one notification read and stamps its read time.
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error)

	// MarkAllRead marks all the user's unread notifications read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes one of the user's notifications.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// MassDelete removes the user's notifications matching the filter.
	MassDelete(ctx context.Context, userID uuid.UUID, input *MassDeleteInput) (int64, error)

	// FanOut materializes an activity event into one notification row per
	// recipient. Invoked asynchronously by the event transport.
	FanOut(ctx context.Context, event *service.ActivityEvent) error

	// PurgeExpired removes read notifications past the retention window and
	// activities past their expiry horizon. Returns rows removed.
	PurgeExpired(ctx context.Context, now time.Time) (*PurgeResult, error)
}

// --- Input / output DTOs ---

// NotificationPage is one page of a user's unread notifications.
type NotificationPage struct {
	Notifications []*entity.Notification `json:"notifications"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Total         int64                  `json:"total"`
	TotalPages    int                    `json:"total_pages"`
}

// MassDeleteInput narrows a mass delete. Nil fields match everything.
type MassDeleteInput struct {
	Read *bool   `json:"read,omitempty"`
	Type *string `json:"type,omitempty"`
}

// PurgeResult reports what a retention sweep removed.
type PurgeResult struct {
	Notifications int64 `json:"notifications"`
	Activities    int64 `json:"activities"`
}
