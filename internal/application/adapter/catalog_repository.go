package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// CategoryRepository gives read access to the category reference data.
type CategoryRepository interface {
	// FindAll returns every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID returns domainerror.ErrCategoryNotFound when no category matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// ActivityRepository gives read access to the activity reference data.
// Returned activities always carry their Category when it exists.
type ActivityRepository interface {
	// FindAll returns activities ordered by name, optionally restricted to one category.
	FindAll(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Activity, error)

	// FindByID returns domainerror.ErrActivityNotFound when no activity matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
}

// RecommendationRepository gives read access to the static advice catalog.
type RecommendationRepository interface {
	// FindAll returns recommendations, largest estimated saving first.
	FindAll(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Recommendation, error)

	// FindByCategories returns recommendations belonging to any of categoryIDs.
	// An empty slice yields an empty result.
	FindByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*entity.Recommendation, error)
}

// CatalogSeeder loads the default reference catalog.
type CatalogSeeder interface {
	// Seed inserts missing categories, activities and recommendations. It is
	// safe to call more than once.
	Seed(ctx context.Context) error
}
