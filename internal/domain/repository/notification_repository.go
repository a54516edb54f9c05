package repository

import (
	"context"
	"errors"
	"time"

	"mapnmeet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows mass operations on a user's notifications.
type NotificationFilter struct {
	Read *bool
	Type *entity.NotificationType
}

// NotificationRepository defines the interface for notification persistence.
// All single-row operations are scoped by the recipient so a user can never
// touch another user's notifications.
type NotificationRepository interface {
	// Create persists a single notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch persists multiple notifications in one insert.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	// ListUnreadByUser returns a page of the user's unread notifications,
	// newest first, along with the total unread count.
	ListUnreadByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error)

	// MarkRead flips the read flag of one notification owned by the user.
	MarkRead(ctx context.Context, id, userID uuid.UUID, readAt time.Time) (*entity.Notification, error)

	// MarkAllRead flips the read flag of all the user's unread notifications
	// and returns the number of rows touched.
	MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)

	// Delete removes one notification owned by the user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// DeleteByFilter removes the user's notifications matching the filter and
	// returns the number of rows removed.
	DeleteByFilter(ctx context.Context, userID uuid.UUID, filter NotificationFilter) (int64, error)

	// PurgeExpired removes read notifications whose ReadAt is older than the
	// cutoff and returns the number of rows removed.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
