package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mapnmeet/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthCodeService_GetProvider(t *testing.T) {
	service := NewOAuthCodeService(testGoogleConfig())

	assert.Equal(t, entity.ProviderTypeGoogle, service.GetProvider())
}

func TestOAuthCodeService_ExchangeCode(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test_client_id", r.PostForm.Get("client_id"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer tokenServer.Close()

	userInfoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":             "google-sub-123",
			"email":          "student@example.edu",
			"name":           "Test Student",
			"picture":        "https://lh3.example.com/photo.jpg",
			"verified_email": true,
		})
	}))
	defer userInfoServer.Close()

	service := NewOAuthCodeService(testGoogleConfig()).(*oauthCodeService)
	service.tokenURL = tokenServer.URL
	service.userInfoURL = userInfoServer.URL

	oauthUser, err := service.ExchangeCode(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", oauthUser.ID)
	assert.Equal(t, "student@example.edu", oauthUser.Email)
	assert.Equal(t, "Test Student", oauthUser.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, oauthUser.Provider)
	assert.Equal(t, "https://lh3.example.com/photo.jpg", oauthUser.AvatarURL)
	assert.True(t, oauthUser.EmailVerified)
}

func TestOAuthCodeService_ExchangeCode_Rejected(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer tokenServer.Close()

	service := NewOAuthCodeService(testGoogleConfig()).(*oauthCodeService)
	service.tokenURL = tokenServer.URL

	oauthUser, err := service.ExchangeCode(context.Background(), "expired-code")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "token exchange failed with status 400")
}
