// Package service declares the domain-facing contracts for supporting
// services implemented in the infra layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the custom claims carried by a session token.
type SessionClaims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed
// session tokens carried in the session cookie.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for a user.
	GenerateSessionToken(userID uuid.UUID) (string, error)

	// ValidateSessionToken checks a token string and returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
