package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair issues a new access and refresh token pair and
	// persists the refresh token so it can be revoked later.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken checks signature, expiry and revocation.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	InvalidateRefreshToken(ctx context.Context, token string) error
}

// RefreshTokenStore persists issued refresh tokens by their hash.
type RefreshTokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	Invalidate(ctx context.Context, tokenHash string) error
	IsValid(ctx context.Context, tokenHash string) (bool, error)
}
