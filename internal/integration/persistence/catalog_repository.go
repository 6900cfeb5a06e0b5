package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) FindAll(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Activity, error) {
	query := r.db.WithContext(ctx).Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var activityModels []model.ActivityModel
	if err := query.Order("name ASC").Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i := range activityModels {
		activities[i] = activityModels[i].ToEntity()
	}
	return activities, nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActivityNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository instance.
func NewRecommendationRepository(db *gorm.DB) adapter.RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) FindAll(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Recommendation, error) {
	query := r.db.WithContext(ctx).Model(&model.RecommendationModel{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	return r.find(query)
}

func (r *recommendationRepository) FindByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*entity.Recommendation, error) {
	if len(categoryIDs) == 0 {
		return []*entity.Recommendation{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("category_id IN ?", categoryIDs))
}

func (r *recommendationRepository) find(query *gorm.DB) ([]*entity.Recommendation, error) {
	var recModels []model.RecommendationModel
	err := query.
		Preload("Category").
		Order("estimated_saving_kg DESC, title ASC").
		Find(&recModels).Error
	if err != nil {
		return nil, err
	}

	recs := make([]*entity.Recommendation, len(recModels))
	for i := range recModels {
		recs[i] = recModels[i].ToEntity()
	}
	return recs, nil
}
