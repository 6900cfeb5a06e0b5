package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	EmissionFactor float64   `gorm:"not null"`
	Unit           string    `gorm:"type:varchar(20);not null"`
	Color          string    `gorm:"type:varchar(7);default:'#10B981'"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:             m.ID,
		Name:           m.Name,
		EmissionFactor: m.EmissionFactor,
		Unit:           m.Unit,
		Color:          m.Color,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:             category.ID,
		Name:           category.Name,
		EmissionFactor: category.EmissionFactor,
		Unit:           category.Unit,
		Color:          category.Color,
		CreatedAt:      category.CreatedAt,
		UpdatedAt:      category.UpdatedAt,
	}
}
