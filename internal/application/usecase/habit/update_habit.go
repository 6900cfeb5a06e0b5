package habit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit update.
type UpdateHabitInput struct {
	HabitID   uuid.UUID
	UserID    uuid.UUID
	Frequency *int              // Optional
	Type      *entity.HabitType // Optional
	LastDate  *time.Time        // Optional
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{habitRepo: habitRepo}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.HabitID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Frequency != nil {
		if err := validateFrequency(*input.Frequency); err != nil {
			return nil, err
		}
		habit.Frequency = *input.Frequency
	}

	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		habit.Type = *input.Type
	}

	if input.LastDate != nil && !input.LastDate.IsZero() {
		habit.LastDate = toDay(*input.LastDate)
	}

	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{Habit: habit}, nil
}

// findOwnedHabit loads a habit and reports habits of other users as not found.
func findOwnedHabit(ctx context.Context, repo adapter.HabitRepository, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return nil, habitNotFound()
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}
	if habit.UserID != userID {
		return nil, habitNotFound()
	}
	return habit, nil
}

func habitNotFound() error {
	return domainerror.NewHabitError(
		domainerror.ErrCodeHabitNotFound,
		"habit not found",
		domainerror.ErrHabitNotFound,
	)
}
