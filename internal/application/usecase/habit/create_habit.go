// Package habit contains habit-related use cases.
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

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID     uuid.UUID
	ActivityID uuid.UUID
	Frequency  int
	Type       entity.HabitType
	LastDate   *time.Time // Optional, defaults to today
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo    adapter.HabitRepository
	activityRepo adapter.ActivityRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository, activityRepo adapter.ActivityRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo:    habitRepo,
		activityRepo: activityRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	if input.ActivityID == uuid.Nil || input.Type == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"activity_id and type are required",
			nil,
		)
	}
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}

	activity, err := uc.activityRepo.FindByID(ctx, input.ActivityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitActivity,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	exists, err := uc.habitRepo.ExistsByUserAndActivity(ctx, input.UserID, input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check habit existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitAlreadyExists,
			"a habit already exists for this activity",
			domainerror.ErrHabitAlreadyExists,
		)
	}

	lastDate := time.Now()
	if input.LastDate != nil && !input.LastDate.IsZero() {
		lastDate = *input.LastDate
	}

	habit := entity.NewHabit(input.UserID, input.ActivityID, input.Frequency, input.Type, toDay(lastDate))
	habit.Activity = activity

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{Habit: habit}, nil
}

func validateFrequency(frequency int) error {
	if frequency <= 0 {
		return domainerror.NewHabitError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be greater than zero",
			domainerror.ErrInvalidFrequency,
		)
	}
	return nil
}

func validateType(habitType entity.HabitType) error {
	if !habitType.IsValid() {
		return domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitType,
			"type must be 'daily', 'weekly', or 'monthly'",
			domainerror.ErrInvalidHabitType,
		)
	}
	return nil
}

func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
