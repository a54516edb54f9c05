package google

import (
	"context"
	"log/slog"
	"testing"

	"mapnmeet/config"
	"mapnmeet/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testGoogleConfig() *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			RedirectURI:  "http://localhost:8080/callback",
		},
	}
}

func TestAuthService_GetProvider(t *testing.T) {
	authService := NewAuthService(testGoogleConfig(), slog.Default())

	assert.Equal(t, entity.ProviderTypeGoogle, authService.GetProvider())
}

func TestAuthService_VerifyIDToken_InvalidFormat(t *testing.T) {
	authService := NewAuthService(testGoogleConfig(), slog.Default())
	ctx := context.Background()

	oauthUser, err := authService.VerifyIDToken(ctx, "invalid_token_format")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestClaimHelpers(t *testing.T) {
	claims := map[string]any{
		"email":          "student@example.edu",
		"email_verified": true,
		"picture":        "https://lh3.example.com/photo.jpg",
		"iat":            float64(1635597200),
	}

	assert.Equal(t, "student@example.edu", claimString(claims, "email"))
	assert.Equal(t, "", claimString(claims, "name"))
	assert.Equal(t, "", claimString(claims, "iat"))
	assert.True(t, claimBool(claims, "email_verified"))
	assert.False(t, claimBool(claims, "missing"))
}
