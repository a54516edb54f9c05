package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mapnmeet/config"
	"mapnmeet/internal/delivery/http/response"
	"mapnmeet/internal/domain/service"
	"mapnmeet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the Google sign-in handlers.
type AuthHandler struct {
	uc         usecase.UserUsecase
	tokenSvc   service.TokenService
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	cookieName := ""
	secure := false
	if cfg != nil && cfg.Session != nil {
		cookieName = cfg.Session.CookieName
		secure = cfg.Session.Secure
	}

	return &AuthHandler{
		uc:         uc,
		tokenSvc:   tokenSvc,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger,
	}
}

type credentialInput struct {
	Credential string `json:"credential" validate:"required"`
}

// GoogleCredential handles the ID-token variant of Google sign-in: the
// browser's Google Sign-In widget posts the credential directly.
func (h *AuthHandler) GoogleCredential(c echo.Context) error {
	var input credentialInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.GoogleCallback(c.Request().Context(), input.Credential)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, result.Token)

	return response.Success(c, http.StatusOK, result, "Login successful")
}

// GoogleRedirect handles the authorization-code variant: Google redirects
// back with ?code= and the backend finishes the exchange.
func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing authorization code")
	}

	result, err := h.uc.GoogleAuthCode(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, result.Token)

	return response.Success(c, http.StatusOK, result, "Login successful")
}

// Logout clears the session cookie. Tokens are stateless, so there is
// nothing to revoke server-side; expiry does the rest.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenSvc.SessionDuration()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
