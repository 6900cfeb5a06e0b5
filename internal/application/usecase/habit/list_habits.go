package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID uuid.UUID
}

// HabitOutput is a habit with its estimated impact per period in kg CO2e.
type HabitOutput struct {
	Habit           *entity.Habit
	EstimatedImpact float64
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits               []*HabitOutput
	TotalEstimatedImpact float64
}

// ListHabitsUseCase handles listing habits logic.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{habitRepo: habitRepo}
}

// Execute performs the habit listing.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	output := &ListHabitsOutput{
		Habits: make([]*HabitOutput, 0, len(habits)),
	}
	for _, h := range habits {
		estimate := EstimatedImpact(h)
		output.Habits = append(output.Habits, &HabitOutput{Habit: h, EstimatedImpact: estimate})
		output.TotalEstimatedImpact += estimate
	}
	return output, nil
}

// EstimatedImpact is frequency times the emission factor of the habit's
// category, or zero when the category is not resolved.
func EstimatedImpact(h *entity.Habit) float64 {
	if h.Activity == nil || h.Activity.Category == nil {
		return 0
	}
	return float64(h.Frequency) * h.Activity.Category.EmissionFactor
}
