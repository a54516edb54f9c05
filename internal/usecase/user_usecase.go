// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mapnmeet/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for login, profile and social graph
// operations.
type UserUsecase interface {
	// GoogleCallback signs a user in from a verified Google ID token
	// credential, creating the user and provider link on first sign-in.
	GoogleCallback(ctx context.Context, credential string) (*LoginResult, error)

	// GoogleAuthCode signs a user in from an OAuth authorization code,
	// exchanging it for the Google identity first.
	GoogleAuthCode(ctx context.Context, code string) (*LoginResult, error)

	// GetUser returns the public view of a user.
	GetUser(ctx context.Context, userID uuid.UUID) (*UserDetail, error)

	// UpdateProfile updates the caller's own profile fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// Follow makes follower follow followee.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes the follow edge.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// ListFollowers returns the users following userID.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// ListFollowing returns the users userID follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)
}

// --- Input / output DTOs ---

// LoginResult carries the signed-in user and their session token.
type LoginResult struct {
	User    *entity.User `json:"user"`
	Token   string       `json:"-"`
	NewUser bool         `json:"new_user"`
}

// UserDetail is the public view of a user: safe profile fields plus the
// social counts the profile page renders.
type UserDetail struct {
	User              *entity.User `json:"user"`
	FollowerCount     int64        `json:"follower_count"`
	FollowingCount    int64        `json:"following_count"`
	JoinedActivityIDs []uuid.UUID  `json:"joined_activity_ids"`
}

// UpdateProfileInput defines the caller-editable profile fields. Nil fields
// are left untouched.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Contact   *string `json:"contact,omitempty" validate:"omitempty,max=255"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,max=100"`
	ImageURL  *string `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
}
