package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// ActivityModel represents the activities table in the database.
type ActivityModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain Activity entity, including
// the category when it was preloaded.
func (m *ActivityModel) ToEntity() *entity.Activity {
	activity := &entity.Activity{
		ID:         m.ID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Category != nil {
		activity.Category = m.Category.ToEntity()
	}
	return activity
}

// ActivityFromEntity creates an ActivityModel from a domain Activity entity.
// The category association is not copied.
func ActivityFromEntity(activity *entity.Activity) *ActivityModel {
	return &ActivityModel{
		ID:         activity.ID,
		Name:       activity.Name,
		CategoryID: activity.CategoryID,
		CreatedAt:  activity.CreatedAt,
		UpdatedAt:  activity.UpdatedAt,
	}
}
