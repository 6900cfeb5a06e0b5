// Package recommendation contains use cases over reduction advice.
package recommendation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

// ListRecommendationsInput represents the input for listing recommendations.
type ListRecommendationsInput struct {
	CategoryID *uuid.UUID // Optional
}

// ListRecommendationsOutput represents the output of listing recommendations.
type ListRecommendationsOutput struct {
	Recommendations []*entity.Recommendation
}

// ListRecommendationsUseCase lists the static catalog of advice.
type ListRecommendationsUseCase struct {
	recommendationRepo adapter.RecommendationRepository
	categoryRepo       adapter.CategoryRepository
}

// NewListRecommendationsUseCase creates a new ListRecommendationsUseCase instance.
func NewListRecommendationsUseCase(
	recommendationRepo adapter.RecommendationRepository,
	categoryRepo adapter.CategoryRepository,
) *ListRecommendationsUseCase {
	return &ListRecommendationsUseCase{
		recommendationRepo: recommendationRepo,
		categoryRepo:       categoryRepo,
	}
}

// Execute performs the recommendation listing.
func (uc *ListRecommendationsUseCase) Execute(ctx context.Context, input ListRecommendationsInput) (*ListRecommendationsOutput, error) {
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

	recommendations, err := uc.recommendationRepo.FindAll(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return &ListRecommendationsOutput{Recommendations: recommendations}, nil
}
