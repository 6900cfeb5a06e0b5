// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns domainerror.ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail looks a user up by lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
