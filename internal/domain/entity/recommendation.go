// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is a piece of static advice for reducing emissions in a category.
type Recommendation struct {
	ID                uuid.UUID
	CategoryID        uuid.UUID
	Category          *Category
	Title             string
	Description       string
	EstimatedSavingKg float64
	Icon              string
	CreatedAt         time.Time
}
