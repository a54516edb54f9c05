// Package google implements the Google sign-in services.
package google

import (
	"context"
	"log/slog"

	"mapnmeet/config"
	"mapnmeet/internal/domain/entity"
	"mapnmeet/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// authService verifies Google ID tokens against the configured client ID.
type authService struct {
	clientID string
	logger   *slog.Logger
}

// NewAuthService creates the ID-token verification service.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &authService{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
	}
}

// VerifyIDToken validates the credential's signature, expiry and audience
// with Google's public keys and maps the claims onto an OAuthUser.
func (s *authService) VerifyIDToken(ctx context.Context, idTokenString string) (*service.OAuthUser, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}

	if oauthUser.Email == "" {
		return nil, errors.New("ID token carries no email claim")
	}

	return oauthUser, nil
}

// GetProvider returns the OAuth provider type.
func (s *authService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

func claimBool(claims map[string]any, key string) bool {
	v, _ := claims[key].(bool)

	return v
}
