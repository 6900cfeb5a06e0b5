package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID returns domainerror.ErrHabitNotFound when no habit matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUserID returns the user's habits with Activity and Category resolved.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	Update(ctx context.Context, habit *entity.Habit) error
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByUserAndActivity(ctx context.Context, userID, activityID uuid.UUID) (bool, error)
}
