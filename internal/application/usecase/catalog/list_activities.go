package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

// ListActivitiesInput represents the input for listing activities.
type ListActivitiesInput struct {
	CategoryID *uuid.UUID // Optional
}

// ListActivitiesOutput represents the output of listing activities.
type ListActivitiesOutput struct {
	Activities []*entity.Activity
}

// ListActivitiesUseCase lists activities, optionally within one category.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
	categoryRepo adapter.CategoryRepository
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository, categoryRepo adapter.CategoryRepository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the activity listing. An unknown category is reported
// rather than silently returning an empty list.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewCatalogError(
					domainerror.ErrCodeCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	activities, err := uc.activityRepo.FindAll(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return &ListActivitiesOutput{Activities: activities}, nil
}
