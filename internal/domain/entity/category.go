// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#10B981"

// Category groups activities that share an emission factor.
// EmissionFactor converts one Unit of quantity into kg of CO2-equivalent.
type Category struct {
	ID             uuid.UUID
	Name           string
	EmissionFactor float64
	Unit           string
	Color          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, emissionFactor float64, unit, color string) *Category {
	now := time.Now().UTC()

	if color == "" {
		color = DefaultCategoryColor
	}

	return &Category{
		ID:             uuid.New(),
		Name:           name,
		EmissionFactor: emissionFactor,
		Unit:           unit,
		Color:          color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
