package repository

import (
	"context"
	"errors"

	"mapnmeet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateFollow is returned when the follow edge already exists.
var ErrDuplicateFollow = errors.New("already following")

// FollowRepository defines persistence for the directed follow graph.
type FollowRepository interface {
	// Create inserts the follow edge. Returns ErrDuplicateFollow when the
	// edge already exists.
	Create(ctx context.Context, follow *entity.Follow) error

	// Delete removes the follow edge if present and reports whether an edge
	// was removed.
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// Exists reports whether follower currently follows followee.
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// ListFollowers returns the users following the given user.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// ListFollowing returns the users the given user follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// Counts returns the follower and following counts for a user.
	Counts(ctx context.Context, userID uuid.UUID) (followers int64, following int64, err error)
}
