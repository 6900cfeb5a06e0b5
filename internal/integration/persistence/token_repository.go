package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
)

// tokenRepository implements adapter.RefreshTokenStore on top of the
// refresh_tokens table.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new refresh token store.
func NewTokenRepository(db *gorm.DB) adapter.RefreshTokenStore {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Save(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	refreshToken := &model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: tokenHash,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(refreshToken).Error
}

// IsValid reports whether the token exists, is not revoked and has not expired.
func (r *tokenRepository) IsValid(ctx context.Context, tokenHash string) (bool, error) {
	var refreshToken model.RefreshTokenModel
	result := r.db.WithContext(ctx).
		Where("token_hash = ? AND invalidated = ? AND expires_at > ?", tokenHash, false, time.Now().UTC()).
		First(&refreshToken)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

func (r *tokenRepository) Invalidate(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Update("invalidated", true).Error
}
