package service

import (
	"context"

	"mapnmeet/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthAuthService defines the interface for OAuth authentication operations.
// This is specifically for ID token verification (like Google ID tokens).
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	// This is the path used by Google Sign-In where the client sends an ID
	// token directly.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type.
	GetProvider() entity.ProviderType
}

// OAuthCodeService defines the authorization-code variant of the flow:
// exchange the code Google redirected back with, then fetch the user's
// profile with the resulting access token.
type OAuthCodeService interface {
	// ExchangeCode exchanges an authorization code and returns the user's
	// profile information.
	ExchangeCode(ctx context.Context, code string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type.
	GetProvider() entity.ProviderType
}
