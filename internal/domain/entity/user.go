// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Membership in activities and the social
// graph are not embedded here; both live in dedicated join relations and are
// loaded through their repositories.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`      // Unique login identifier, provided by Google sign-in.
	Name      string    `json:"name"`       // Display name.
	Contact   string    `json:"contact"`    // Preferred contact method, defaults to the email.
	Bio       string    `json:"bio"`        // Optional short bio, at most 280 characters.
	Instagram string    `json:"instagram"`  // Optional Instagram handle.
	ImageURL  string    `json:"image_url"`  // Avatar URL, usually the Google profile picture.
	Admin     bool      `json:"-"`          // Administrative rights, never serialized.
	Active    bool      `json:"-"`          // Soft-deactivation flag, never serialized.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// UserSummary is the public projection embedded in activity reads: enough
// to render a participant card, nothing more.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Contact  string    `json:"contact"`
	ImageURL string    `json:"image_url"`
}

// Summary projects the user onto its public card fields.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Contact:  u.Contact,
		ImageURL: u.ImageURL,
	}
}

// ProviderType identifies an external identity provider.
type ProviderType string

const (
	// ProviderTypeGoogle is the Google OAuth identity provider.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication links a user to an external identity provider account.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // Provider-specific subject, e.g. Google's 'sub' claim.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Follow is a directed edge in the social graph. Exactly one row per
// (follower, followee) pair.
type Follow struct {
	FollowerID uuid.UUID
	FolloweeID uuid.UUID
	CreatedAt  time.Time
}
