package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
)

// footprintRepository implements adapter.FootprintRepository.
type footprintRepository struct {
	db *gorm.DB
}

// NewFootprintRepository creates a new footprint repository instance.
func NewFootprintRepository(db *gorm.DB) adapter.FootprintRepository {
	return &footprintRepository{db: db}
}

func (r *footprintRepository) Create(ctx context.Context, record *entity.ActivityRecord) error {
	return r.db.WithContext(ctx).Create(model.FootprintFromEntity(record)).Error
}

func (r *footprintRepository) Update(ctx context.Context, record *entity.ActivityRecord) error {
	result := r.db.WithContext(ctx).
		Model(&model.FootprintModel{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]any{
			"activity_id": record.ActivityID,
			"quantity":    record.Quantity,
			"unit":        record.Unit,
			"occurred_on": record.OccurredOn,
			"updated_at":  record.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFootprintNotFound
	}
	return nil
}

func (r *footprintRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.FootprintModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFootprintNotFound
	}
	return nil
}

func (r *footprintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivityRecord, error) {
	var footprintModel model.FootprintModel
	result := r.db.WithContext(ctx).
		Preload("Activity.Category").
		Where("id = ?", id).
		First(&footprintModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFootprintNotFound
		}
		return nil, result.Error
	}
	return footprintModel.ToEntity(), nil
}

// FetchRecordsForUser loads every record of the user with activity and
// category resolved in a fixed number of queries.
func (r *footprintRepository) FetchRecordsForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityRecord, error) {
	return r.FindByUser(ctx, userID, adapter.FootprintFilter{})
}

func (r *footprintRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.FootprintFilter) ([]*entity.ActivityRecord, error) {
	query := r.db.WithContext(ctx).
		Model(&model.FootprintModel{}).
		Where("footprints.user_id = ?", userID)

	if filter.Search != "" || filter.CategoryID != nil {
		query = query.Joins("JOIN activities ON activities.id = footprints.activity_id")
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(activities.name) LIKE ?", searchPattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("activities.category_id = ?", *filter.CategoryID)
	}
	if filter.From != nil {
		query = query.Where("footprints.occurred_on >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("footprints.occurred_on <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var footprintModels []model.FootprintModel
	result := query.
		Preload("Activity.Category").
		Order("footprints.occurred_on DESC, footprints.created_at DESC").
		Find(&footprintModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ActivityRecord, len(footprintModels))
	for i := range footprintModels {
		records[i] = footprintModels[i].ToEntity()
	}
	return records, nil
}

// ImpactTotals computes SUM(quantity * emission_factor) and the record count
// in SQL. Records whose activity or category is missing add nothing to the
// sum but are still counted, matching the in-memory aggregation.
func (r *footprintRepository) ImpactTotals(ctx context.Context, userID uuid.UUID) (*adapter.ImpactTotals, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Table("footprints").
		Select("COALESCE(SUM(footprints.quantity * categories.emission_factor), 0) AS total, COUNT(footprints.id) AS count").
		Joins("LEFT JOIN activities ON activities.id = footprints.activity_id").
		Joins("LEFT JOIN categories ON categories.id = activities.category_id").
		Where("footprints.user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &adapter.ImpactTotals{Total: row.Total, Count: row.Count}, nil
}
