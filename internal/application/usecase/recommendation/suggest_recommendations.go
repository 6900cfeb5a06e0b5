package recommendation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	"github.com/ecotrack/backend/internal/domain/impact"
)

// Suggestion sources.
const (
	SourceHabits  = "habits"
	SourceImpact  = "impact"
	SourceNothing = "none"
)

// SuggestRecommendationsInput represents the input for suggesting advice.
type SuggestRecommendationsInput struct {
	UserID uuid.UUID
}

// SuggestRecommendationsOutput holds the advice and which user data it was
// derived from.
type SuggestRecommendationsOutput struct {
	Recommendations []*entity.Recommendation
	Source          string
}

// SuggestRecommendationsUseCase picks the advice relevant to a user: the
// categories of the user's habits, or the categories of the user's logged
// impact when no habits exist.
type SuggestRecommendationsUseCase struct {
	recommendationRepo adapter.RecommendationRepository
	habitRepo          adapter.HabitRepository
	recordStore        adapter.RecordStore
}

// NewSuggestRecommendationsUseCase creates a new SuggestRecommendationsUseCase instance.
func NewSuggestRecommendationsUseCase(
	recommendationRepo adapter.RecommendationRepository,
	habitRepo adapter.HabitRepository,
	recordStore adapter.RecordStore,
) *SuggestRecommendationsUseCase {
	return &SuggestRecommendationsUseCase{
		recommendationRepo: recommendationRepo,
		habitRepo:          habitRepo,
		recordStore:        recordStore,
	}
}

// Execute performs the suggestion.
func (uc *SuggestRecommendationsUseCase) Execute(ctx context.Context, input SuggestRecommendationsInput) (*SuggestRecommendationsOutput, error) {
	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	source := SourceHabits
	categoryIDs := habitCategories(habits)

	if len(categoryIDs) == 0 {
		records, err := uc.recordStore.FetchRecordsForUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch records: %w", err)
		}
		source = SourceImpact
		categoryIDs = impactCategories(records)
	}

	if len(categoryIDs) == 0 {
		return &SuggestRecommendationsOutput{
			Recommendations: []*entity.Recommendation{},
			Source:          SourceNothing,
		}, nil
	}

	recommendations, err := uc.recommendationRepo.FindByCategories(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendations: %w", err)
	}
	return &SuggestRecommendationsOutput{Recommendations: recommendations, Source: source}, nil
}

func habitCategories(habits []*entity.Habit) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, len(habits))
	for _, h := range habits {
		if h.Activity == nil {
			continue
		}
		id := h.Activity.CategoryID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// impactCategories returns the categories with a positive impact, largest first.
func impactCategories(records []*entity.ActivityRecord) []uuid.UUID {
	byName := make(map[string]uuid.UUID)
	for _, r := range records {
		if c := r.Category(); c != nil {
			byName[c.Name] = c.ID
		}
	}

	ids := make([]uuid.UUID, 0, len(byName))
	for _, point := range impact.SortedByValue(impact.ByCategory(records)) {
		if point.Value <= 0 {
			continue
		}
		ids = append(ids, byName[point.Label])
	}
	return ids
}
