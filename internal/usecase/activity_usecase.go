package usecase

import (
	"context"
	"time"

	"mapnmeet/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityUsecase defines the interface for the activity directory.
type ActivityUsecase interface {
	// Create registers a new activity owned by creatorID.
	Create(ctx context.Context, creatorID uuid.UUID, input *CreateActivityInput) (*entity.Activity, error)

	// Get retrieves one activity with creator and joinees populated.
	Get(ctx context.Context, activityID uuid.UUID) (*entity.Activity, error)

	// Update modifies an activity. Creator-only; joinees are notified.
	Update(ctx context.Context, requesterID, activityID uuid.UUID, input *UpdateActivityInput) (*entity.Activity, error)

	// Cancel soft-cancels an activity. Creator-only; joinees are notified.
	Cancel(ctx context.Context, requesterID, activityID uuid.UUID) error

	// List returns active activities, optionally proximity-filtered.
	List(ctx context.Context, filter *ListActivitiesInput) ([]*entity.Activity, error)

	// ListByCreator returns a user's own activities, cancelled included.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Activity, error)

	// ListByParticipant returns the active activities a user has joined.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// ShareQRCode renders the PNG QR code for an activity's share link.
	ShareQRCode(ctx context.Context, activityID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// CreateActivityInput defines the data required to create an activity.
type CreateActivityInput struct {
	Title           string    `json:"title" validate:"required,min=1,max=200"`
	Description     string    `json:"description" validate:"max=5000"`
	LocationName    string    `json:"location_name" validate:"max=255"`
	Latitude        float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude       float64   `json:"longitude" validate:"min=-180,max=180"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	EndsAt          time.Time `json:"ends_at" validate:"required"`
	MaxParticipants int       `json:"max_participants" validate:"min=0"`
	ContactInfo     string    `json:"contact_info" validate:"max=255"`
}

// UpdateActivityInput defines the editable activity fields. Nil fields are
// left untouched.
type UpdateActivityInput struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	LocationName    *string    `json:"location_name,omitempty" validate:"omitempty,max=255"`
	Latitude        *float64   `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64   `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	MaxParticipants *int       `json:"max_participants,omitempty" validate:"omitempty,min=0"`
	ContactInfo     *string    `json:"contact_info,omitempty" validate:"omitempty,max=255"`
}

// ListActivitiesInput narrows the active-activity listing.
type ListActivitiesInput struct {
	// Near restricts to activities within Radius meters of (Lat, Lng).
	Near   bool
	Lat    float64
	Lng    float64
	Radius float64

	Limit  int
	Offset int
}
