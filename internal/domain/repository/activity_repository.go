package repository

import (
	"context"
	"errors"
	"time"

	"mapnmeet/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when an activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrDuplicateParticipant is returned when the (activity, user) membership
	// row already exists. Surfaced by the unique constraint on the join table.
	ErrDuplicateParticipant = errors.New("participant already joined")
)

// ActivityFilter narrows active listings.
type ActivityFilter struct {
	// Near restricts results to activities within Radius meters of the point,
	// lon/lat order. Ignored when nil.
	Near   *[2]float64
	Radius float64

	Limit  int
	Offset int
}

// ActivityRepository defines persistence operations for activities and the
// participants join relation (the membership store). Keeping membership here
// rather than mirrored arrays on both sides makes the two-sided consistency
// of spec'd joins structural: one row is the whole fact.
type ActivityRepository interface {
	// Create persists a new activity.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity with its creator and joinees populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FindByIDForUpdate retrieves an activity and locks its row for the
	// remainder of the surrounding transaction. Must only be called on a
	// transaction-bound repository.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// Update modifies an existing activity's own fields (not membership).
	Update(ctx context.Context, activity *entity.Activity) error

	// ListActive returns non-cancelled activities matching the filter.
	ListActive(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, error)

	// ListByCreator returns all activities created by a user, cancelled included.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Activity, error)

	// ListByParticipant returns the non-cancelled activities a user has joined.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// CountParticipants returns the current size of the joinee set.
	CountParticipants(ctx context.Context, activityID uuid.UUID) (int, error)

	// IsParticipant reports whether the user has joined the activity.
	IsParticipant(ctx context.Context, activityID, userID uuid.UUID) (bool, error)

	// AddParticipant inserts the membership row. Returns
	// ErrDuplicateParticipant when the row already exists.
	AddParticipant(ctx context.Context, activityID, userID uuid.UUID) error

	// RemoveParticipant deletes the membership row if present and reports
	// whether a row was removed.
	RemoveParticipant(ctx context.Context, activityID, userID uuid.UUID) (bool, error)

	// ListParticipantIDs returns the IDs of all joinees of an activity.
	ListParticipantIDs(ctx context.Context, activityID uuid.UUID) ([]uuid.UUID, error)

	// PurgeExpired hard-deletes activities whose retention horizon has passed
	// and returns the number of rows removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
