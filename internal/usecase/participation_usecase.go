package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ParticipationUsecase defines the join/leave operations on an activity's
// joinee set. Every operation is a single transaction with the activity row
// locked, so the capacity check and the membership write cannot interleave
// with a concurrent join.
type ParticipationUsecase interface {
	// Join adds userID to the activity's joinees. Fails with
	// ErrActivityFull, ErrAlreadyJoined or ErrOwnerCannotJoin.
	Join(ctx context.Context, userID, activityID uuid.UUID) error

	// Leave removes userID from the activity's joinees. Fails with
	// ErrNotJoined when there is nothing to remove.
	Leave(ctx context.Context, userID, activityID uuid.UUID) error

	// RemoveParticipant lets the activity's creator remove another joinee.
	RemoveParticipant(ctx context.Context, requesterID, activityID, targetUserID uuid.UUID) error
}
