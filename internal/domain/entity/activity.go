// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ActivityStatus is the lifecycle state of an activity. A cancelled activity
// is kept for the creator's history but excluded from active listings.
type ActivityStatus string

const (
	// ActivityStatusActive marks an activity open for participation.
	ActivityStatusActive ActivityStatus = "active"
	// ActivityStatusCancelled marks a soft-cancelled activity.
	ActivityStatusCancelled ActivityStatus = "cancelled"
)

// Activity is an event users can join, bounded by MaxParticipants.
// Membership is stored as one row per (activity, user) in the participants
// relation; Joinees is a read projection of that relation.
type Activity struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	LocationName    string         `json:"location_name"`   // Human-readable place name.
	Location        orb.Point      `json:"location"`        // Geographic coordinates, serialized [lon, lat].
	StartsAt        time.Time      `json:"starts_at"`
	EndsAt          time.Time      `json:"ends_at"`
	MaxParticipants int            `json:"max_participants"` // Capacity bound; 0 means unlimited.
	ContactInfo     string         `json:"contact_info"`
	CreatedBy       uuid.UUID      `json:"created_by"`
	Status          ActivityStatus `json:"status"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`
	ExpiresAt       time.Time      `json:"-"` // Hard-purge horizon, EndsAt plus the retention window.
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Creator *UserSummary   `json:"creator,omitempty"` // Populated on reads.
	Joinees []*UserSummary `json:"joinees"`           // Populated on reads, projection of the participants relation.
}

// IsCancelled reports whether the activity has been soft-cancelled.
func (a *Activity) IsCancelled() bool {
	return a.Status == ActivityStatusCancelled
}

// HasCapacityLimit reports whether the activity bounds its participant count.
func (a *Activity) HasCapacityLimit() bool {
	return a.MaxParticipants > 0
}
