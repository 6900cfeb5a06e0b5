package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// RecommendationModel represents the recommendations table.
type RecommendationModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CategoryID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category          *CategoryModel `gorm:"foreignKey:CategoryID"`
	Title             string         `gorm:"type:varchar(150);uniqueIndex;not null"`
	Description       string         `gorm:"type:text;not null"`
	EstimatedSavingKg float64        `gorm:"not null"`
	Icon              string         `gorm:"type:varchar(50);default:'leaf'"`
	CreatedAt         time.Time      `gorm:"not null"`
}

// TableName returns the table name for the RecommendationModel.
func (RecommendationModel) TableName() string {
	return "recommendations"
}

// ToEntity converts a RecommendationModel to a domain Recommendation entity.
func (m *RecommendationModel) ToEntity() *entity.Recommendation {
	rec := &entity.Recommendation{
		ID:                m.ID,
		CategoryID:        m.CategoryID,
		Title:             m.Title,
		Description:       m.Description,
		EstimatedSavingKg: m.EstimatedSavingKg,
		Icon:              m.Icon,
		CreatedAt:         m.CreatedAt,
	}
	if m.Category != nil {
		rec.Category = m.Category.ToEntity()
	}
	return rec
}

// RecommendationFromEntity creates a RecommendationModel from a domain entity.
func RecommendationFromEntity(rec *entity.Recommendation) *RecommendationModel {
	return &RecommendationModel{
		ID:                rec.ID,
		CategoryID:        rec.CategoryID,
		Title:             rec.Title,
		Description:       rec.Description,
		EstimatedSavingKg: rec.EstimatedSavingKg,
		Icon:              rec.Icon,
		CreatedAt:         rec.CreatedAt,
	}
}
