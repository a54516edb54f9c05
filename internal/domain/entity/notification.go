// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the domain event a notification describes.
type NotificationType string

const (
	// NotificationNewParticipant tells an activity creator someone joined.
	NotificationNewParticipant NotificationType = "new_participant"
	// NotificationActivityUpdate tells joinees an activity they joined changed.
	NotificationActivityUpdate NotificationType = "activity_update"
	// NotificationActivityCancelled tells joinees an activity was cancelled.
	NotificationActivityCancelled NotificationType = "activity_cancelled"
	// NotificationNewFollower tells a user someone started following them.
	NotificationNewFollower NotificationType = "new_follower"
)

// Valid reports whether the type is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationNewParticipant, NotificationActivityUpdate,
		NotificationActivityCancelled, NotificationNewFollower:
		return true
	default:
		return false
	}
}

// Notification is an append-only, user-facing fact about a state change.
// ActivityID is required unless the type is new_follower, in which case
// FollowerID is required instead. The only mutation after creation is
// flipping Read (which stamps ReadAt); read notifications are purged once
// ReadAt is older than the retention window.
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"` // Recipient.
	Type       NotificationType `json:"type"`
	ActivityID *uuid.UUID       `json:"activity_id,omitempty"`
	FollowerID *uuid.UUID       `json:"follower_id,omitempty"`
	Message    string           `json:"message"`
	Read       bool             `json:"read"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// MarkRead flips the read flag and stamps ReadAt. Idempotent.
func (n *Notification) MarkRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &now
}
